package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPricingCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Show subscription tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := application.Catalog.Pricing(cmd.Context(), refresh)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PLAN\tPRICE\tINTERVAL")
			for _, p := range plans {
				name := p.Name
				if p.IsPopular {
					name += " *"
				}
				fmt.Fprintf(w, "%s\t$%.2f\t%s\n", name, float64(p.PriceCents)/100, p.Interval)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	return cmd
}

func newTestimonialsCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "testimonials",
		Short: "Show student testimonials",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := application.Catalog.Testimonials(cmd.Context(), refresh)
			if err != nil {
				return err
			}

			for _, item := range items {
				if item.Role != "" {
					cmd.Printf("%s (%s):\n", item.Name, item.Role)
				} else {
					cmd.Printf("%s:\n", item.Name)
				}
				cmd.Printf("  %q\n\n", item.Quote)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	return cmd
}
