package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbot/internal/cli"
	"github.com/Veraticus/budgetbot/internal/session"
)

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Show or set the active profile's income",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current income",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}
			fmt.Printf("Income: %s\n", cli.FormatAmount(s.Budget().Income))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Set the budget period income",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			// Form-boundary validation: the session trusts its input.
			if amount < 0 {
				return fmt.Errorf("income cannot be negative")
			}

			s, err := initSession()
			if err != nil {
				return err
			}

			if err := s.Apply(session.SetIncomeIntent{Amount: amount}); err != nil {
				return fmt.Errorf("failed to save income: %w", err)
			}
			fmt.Printf("%s income to %s\n", cli.SuccessStyle.Render("Set"), cli.FormatAmount(amount))
			return nil
		},
	})

	return cmd
}
