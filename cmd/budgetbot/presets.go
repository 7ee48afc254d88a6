package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbot/internal/cli"
	"github.com/Veraticus/budgetbot/internal/model"
	"github.com/Veraticus/budgetbot/internal/session"
)

func presetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "presets",
		Aliases: []string{"preset"},
		Short:   "Manage quick-add expense presets",
		Long: `Presets are reusable expense recipes shared across all profiles.
Using a preset adds a new expense dated today to the active profile.`,
	}

	cmd.AddCommand(listPresetsCmd())
	cmd.AddCommand(addPresetCmd())
	cmd.AddCommand(removePresetCmd())
	cmd.AddCommand(usePresetCmd())
	cmd.AddCommand(presetFromExpenseCmd())

	return cmd
}

func listPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all shared presets",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			view := s.Budget()
			if len(view.Presets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No presets yet. Use 'budgetbot presets add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Day"))
			for _, p := range view.Presets {
				day := "-"
				if p.DefaultDay != nil {
					day = fmt.Sprintf("%d", *p.DefaultDay)
				}
				fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s %s\t%s\n",
					cli.SubtleStyle.Render(p.ID.String()[:8]),
					p.Name,
					p.Amount,
					cli.CategorySwatch(view.CategoryColor(p.Category)),
					p.Category,
					day)
			}
			return nil
		},
	}
}

func addPresetCmd() *cobra.Command {
	var (
		amount      float64
		category    string
		description string
		day         int
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a shared preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if amount <= 0 {
				return fmt.Errorf("amount must be positive, got %v", amount)
			}
			if strings.TrimSpace(category) == "" {
				return fmt.Errorf("category is required")
			}

			preset := model.NewExpensePreset(args[0], amount, category, description)
			if day != 0 {
				preset = preset.WithDay(day)
			}

			s, err := initSession()
			if err != nil {
				return err
			}

			if err := s.Apply(session.AddPresetIntent{Preset: preset}); err != nil {
				return fmt.Errorf("failed to save presets: %w", err)
			}
			fmt.Printf("%s preset %q ($%.2f, %s)\n", cli.SuccessStyle.Render("Added"), preset.Name, preset.Amount, preset.Category)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "m", 0, "expense amount (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "free-text description")
	cmd.Flags().IntVar(&day, "day", 0, "advisory day of month, clamped to 1-31")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func removePresetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <preset>",
		Short: "Remove a shared preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			preset, err := resolvePreset(s.Budget(), args[0])
			if err != nil {
				return err
			}

			if err := s.Apply(session.RemovePresetIntent{ID: preset.ID}); err != nil {
				return fmt.Errorf("failed to save presets: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Removed ") + preset.Name)
			return nil
		},
	}
}

func usePresetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <preset>",
		Short: "Add an expense from a preset, dated today",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			preset, err := resolvePreset(s.Budget(), args[0])
			if err != nil {
				return err
			}

			if err := s.Apply(session.UsePresetIntent{ID: preset.ID}); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			fmt.Printf("%s $%.2f (%s) from preset %q\n",
				cli.SuccessStyle.Render("Added"), preset.Amount, preset.Category, preset.Name)
			return nil
		},
	}
}

func presetFromExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-expense <expense-id> <name>",
		Short: "Promote an existing expense into a preset",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			id, err := resolveExpenseID(s.Budget(), args[0])
			if err != nil {
				return err
			}

			if err := s.Apply(session.PresetFromExpenseIntent{ExpenseID: id, Name: args[1]}); err != nil {
				return fmt.Errorf("failed to save presets: %w", err)
			}
			fmt.Printf("%s preset %q from expense %s\n", cli.SuccessStyle.Render("Created"), args[1], id.String()[:8])
			return nil
		},
	}
}
