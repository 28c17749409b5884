package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>...",
		Short: "Search the catalog server-side",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := strings.Join(args, " ")

			courses, err := application.Catalog.Search(cmd.Context(), keyword)
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				cmd.Printf("No courses found for %q.\n", keyword)
				return nil
			}

			printCourses(cmd, courses)
			return nil
		},
	}
}
