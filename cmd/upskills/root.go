package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agamlatiff/upskills-sub001/internal/app"
	apperrors "github.com/agamlatiff/upskills-sub001/pkg/errors"
)

// Shared state injected into commands by the root PersistentPreRunE.
var application *app.App

var rootCmd = &cobra.Command{
	Use:   "upskills",
	Short: "Browse the upskills course catalog from the terminal",
	Long: `upskills is a catalog browser for the upskills learning platform.

It keeps a short-lived local cache of catalog data so repeated commands
stay fast, and persists that cache across runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		var err error
		application, err = app.New(cmd.Context())
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if application == nil {
			return nil
		}
		return application.Close()
	},
}

// Execute runs the root command and maps failures to a friendly message plus
// a non-zero exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Friendly(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newCoursesCmd(),
		newCourseCmd(),
		newSearchCmd(),
		newPricingCmd(),
		newTestimonialsCmd(),
		newWishlistCmd(),
		newCacheCmd(),
		newDoctorCmd(),
	)
}
