package main

import (
	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the local catalog cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop all cached catalog data",
		RunE: func(cmd *cobra.Command, args []string) error {
			application.Cache.ClearAll()
			cmd.Println("Cache cleared.")
			return nil
		},
	})

	return cmd
}
