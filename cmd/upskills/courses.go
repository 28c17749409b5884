package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agamlatiff/upskills-sub001/internal/catalog"
	"github.com/agamlatiff/upskills-sub001/internal/domain"
)

type coursesFlags struct {
	search       string
	categories   []string
	difficulties []string
	popular      bool
	free         bool
	page         int
	refresh      bool
}

func newCoursesCmd() *cobra.Command {
	var flags coursesFlags

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List catalog courses with filters and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCourses(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.search, "search", "", "filter by keyword in title or description")
	cmd.Flags().StringSliceVar(&flags.categories, "category", nil, "filter by category (repeatable)")
	cmd.Flags().StringSliceVar(&flags.difficulties, "difficulty", nil, "filter by difficulty (repeatable)")
	cmd.Flags().BoolVar(&flags.popular, "popular", false, "only popular courses")
	cmd.Flags().BoolVar(&flags.free, "free", false, "only free courses")
	cmd.Flags().IntVar(&flags.page, "page", 1, "page to display")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "bypass the cache")

	return cmd
}

func runCourses(cmd *cobra.Command, flags coursesFlags) error {
	groups, err := application.Catalog.Courses(cmd.Context(), flags.refresh)
	if err != nil {
		return err
	}

	view := catalog.NewView(groups)
	view.SetSearch(flags.search)
	view.SetCategories(flags.categories)
	view.SetDifficulties(flags.difficulties)
	view.SetPopularOnly(flags.popular)
	view.SetFreeOnly(flags.free)
	view.SetPage(flags.page)

	page := view.Visible()
	if len(page.Items) == 0 {
		cmd.Println("No courses match the active filters.")
		return nil
	}

	printCourses(cmd, page.Items)
	cmd.Printf("\nPage %d of %d (%d courses)\n", view.Page(), view.TotalPages(), view.FilteredCount())
	return nil
}

func printCourses(cmd *cobra.Command, courses []domain.Course) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tCATEGORY\tDIFFICULTY\tPRICE")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.Slug, c.Title, c.Category, c.Difficulty, priceLabel(c))
	}
	_ = w.Flush()
}

func priceLabel(c domain.Course) string {
	if c.IsFree {
		return "free"
	}
	return fmt.Sprintf("$%.2f", float64(c.PriceCents)/100)
}

func joinTags(c domain.Course) string {
	var tags []string
	if c.IsPopular {
		tags = append(tags, "popular")
	}
	if c.IsFree {
		tags = append(tags, "free")
	}
	return strings.Join(tags, ", ")
}
