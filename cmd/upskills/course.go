package main

import (
	"github.com/spf13/cobra"

	"github.com/agamlatiff/upskills-sub001/pkg/slug"
)

func newCourseCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "course <slug>",
		Short: "Show one course in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := application.Catalog.Course(cmd.Context(), slug.Normalize(args[0]), refresh)
			if err != nil {
				return err
			}

			cmd.Printf("%s\n", course.Title)
			cmd.Printf("  category:   %s\n", course.Category)
			cmd.Printf("  difficulty: %s\n", course.Difficulty)
			cmd.Printf("  price:      %s\n", priceLabel(*course))
			cmd.Printf("  rating:     %.1f (%d students)\n", course.Rating, course.Students)
			if tags := joinTags(*course); tags != "" {
				cmd.Printf("  tags:       %s\n", tags)
			}
			if course.Description != "" {
				cmd.Printf("\n%s\n", course.Description)
			}
			if len(course.Lessons) > 0 {
				cmd.Printf("\nLessons (%d):\n", len(course.Lessons))
				for _, lesson := range course.Lessons {
					cmd.Printf("  - %s\n", lesson.Title)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	return cmd
}
