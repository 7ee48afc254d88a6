package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbot/internal/cli"
	"github.com/Veraticus/budgetbot/internal/session"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the shared expense categories",
		Long:  `Categories are shared across every profile, together with their colors.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(removeCategoryCmd())
	cmd.AddCommand(recolorCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			view := s.Budget()
			if len(view.Categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			for _, name := range view.Categories {
				color := view.CategoryColor(name)
				fmt.Fprintf(w, "%s %s\t%s\n",
					cli.CategorySwatch(color),
					name,
					cli.SubtleStyle.Render(color.Hex()))
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var colorValue string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a shared category",
		Long: `Create a new shared category with a color. Empty names and exact
duplicates are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			color, err := parseColor(colorValue)
			if err != nil {
				return err
			}

			s, err := initSession()
			if err != nil {
				return err
			}

			if err := s.Apply(session.AddCategoryIntent{Name: args[0], Color: color}); err != nil {
				return fmt.Errorf("failed to save categories: %w", err)
			}
			fmt.Printf("%s %s %s\n", cli.SuccessStyle.Render("Saved"), cli.CategorySwatch(color), args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&colorValue, "color", "c", "156,163,175", "color as r,g,b or #rrggbb")
	return cmd
}

func removeCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a shared category",
		Long: `Remove a category from the shared set. Expenses that reference the
name keep it; their display falls back to gray.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			if err := s.Apply(session.RemoveCategoryIntent{Name: args[0]}); err != nil {
				return fmt.Errorf("failed to save categories: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Removed ") + args[0])
			return nil
		},
	}
}

func recolorCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recolor <name> <color>",
		Short: "Change a category's color",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			color, err := parseColor(args[1])
			if err != nil {
				return err
			}

			s, err := initSession()
			if err != nil {
				return err
			}

			if err := s.Apply(session.RecolorCategoryIntent{Name: args[0], Color: color}); err != nil {
				return fmt.Errorf("failed to save categories: %w", err)
			}
			fmt.Printf("%s %s %s\n", cli.SuccessStyle.Render("Recolored"), cli.CategorySwatch(color), args[0])
			return nil
		},
	}
}
