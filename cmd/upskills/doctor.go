package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agamlatiff/upskills-sub001/pkg/health"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check connectivity to the catalog API and cache backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := application.Health.Run(cmd.Context())

			for name, check := range report.Checks {
				if check.Status == health.StatusUp {
					cmd.Printf("  ok    %s\n", name)
				} else {
					cmd.Printf("  FAIL  %s: %s\n", name, check.Error)
				}
			}

			if report.Status == health.StatusDown {
				return fmt.Errorf("one or more checks failed")
			}
			cmd.Println("All checks passed.")
			return nil
		},
	}
}
