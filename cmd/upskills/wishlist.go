package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newWishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage your saved courses",
	}

	cmd.AddCommand(newWishlistListCmd(), newWishlistToggleCmd())
	return cmd
}

func newWishlistListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.Wishlist.Load(cmd.Context()); err != nil {
				return err
			}

			items := application.Wishlist.Items()
			if len(items) == 0 {
				cmd.Println("Your wishlist is empty.")
				return nil
			}

			for _, item := range items {
				cmd.Printf("  [%d] %s (%s)\n", item.Course.ID, item.Course.Title, item.Course.Slug)
			}
			return nil
		},
	}
}

func newWishlistToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <course-id>",
		Short: "Add or remove a course from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := strconv.Atoi(args[0])
			if err != nil {
				return cmd.Usage()
			}

			if err := application.Wishlist.Load(cmd.Context()); err != nil {
				return err
			}
			if err := application.Wishlist.Toggle(cmd.Context(), courseID); err != nil {
				return err
			}

			if application.Wishlist.IsWishlisted(courseID) {
				cmd.Printf("Course %d added to your wishlist.\n", courseID)
			} else {
				cmd.Printf("Course %d removed from your wishlist.\n", courseID)
			}
			return nil
		},
	}
}
