package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbot/internal/cli"
	"github.com/Veraticus/budgetbot/internal/model"
	"github.com/Veraticus/budgetbot/internal/session"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"expense"},
		Short:   "Manage expenses on the active profile",
	}

	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(removeExpenseCmd())
	cmd.AddCommand(toggleExpenseCmd())

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, most recent first",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			view := s.Budget()
			expenses := view.Expenses
			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses yet. Use 'budgetbot expenses add' to create one."))
				return nil
			}

			// Sort a copy; identifiers keep removal stable regardless of
			// display order.
			sorted := make([]model.Expense, len(expenses))
			copy(sorted, expenses)
			sort.SliceStable(sorted, func(i, j int) bool {
				return sorted[j].Date.Before(sorted[i].Date)
			})

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Description"))

			for _, e := range sorted {
				if !e.Active && !all {
					continue
				}
				description := e.Description
				if !e.Active {
					description = strings.TrimSpace(description + " " + cli.InactiveMark())
				}
				fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s %s\t%s\n",
					cli.SubtleStyle.Render(e.ID.String()[:8]),
					e.Date.String(),
					e.Amount,
					cli.CategorySwatch(view.CategoryColor(e.Category)),
					e.Category,
					description)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include inactive expenses")
	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		amount      float64
		category    string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense to the active profile",
		RunE: func(_ *cobra.Command, _ []string) error {
			// Form-boundary validation: invalid input never reaches the
			// session layer.
			if amount <= 0 {
				return fmt.Errorf("amount must be positive, got %v", amount)
			}
			if strings.TrimSpace(category) == "" {
				return fmt.Errorf("category is required")
			}

			when := model.Today()
			if date != "" {
				var err error
				when, err = model.ParseDate(date)
				if err != nil {
					return err
				}
			}

			s, err := initSession()
			if err != nil {
				return err
			}

			expense := model.NewExpense(amount, category, description, when)
			if err := s.Apply(session.AddExpenseIntent{Expense: expense}); err != nil {
				return fmt.Errorf("failed to save expense: %w", err)
			}

			fmt.Printf("%s %s $%.2f (%s)\n",
				cli.SuccessStyle.Render("Added"),
				expense.ID.String()[:8],
				expense.Amount,
				expense.Category)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "m", 0, "expense amount (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "free-text description")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func removeExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an expense by identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			id, err := resolveExpenseID(s.Budget(), args[0])
			if err != nil {
				return err
			}

			if err := s.Apply(session.RemoveExpenseIntent{ID: id}); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Removed ") + id.String()[:8])
			return nil
		},
	}
}

func toggleExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle an expense between active and inactive",
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			id, err := resolveExpenseID(s.Budget(), args[0])
			if err != nil {
				return err
			}

			if err := s.Apply(session.ToggleExpenseIntent{ID: id}); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Toggled ") + id.String()[:8])
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}
