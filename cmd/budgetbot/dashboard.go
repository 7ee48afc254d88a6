package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbot/internal/cli"
	"github.com/Veraticus/budgetbot/internal/session"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show the active profile's budget summary",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}
			printDashboard(s)
			return nil
		},
	}
}

func printDashboard(s *session.Session) {
	view := s.Budget()
	config := s.Config()

	profileName := s.ActiveProfileID()
	if meta := config.ActiveProfile(); meta != nil {
		profileName = meta.Name
	}

	fmt.Println(cli.TitleStyle.Render("💰 " + profileName))

	fmt.Printf("Income:    %s\n", cli.FormatAmount(view.Income))
	fmt.Printf("Expenses:  %s\n", cli.FormatAmount(view.TotalExpenses()))
	fmt.Printf("Remaining: %s\n\n", cli.FormatAmount(view.RemainingBalance()))

	totals := make(map[string]float64)
	var active int
	for _, e := range view.Expenses {
		if !e.Active {
			continue
		}
		totals[e.Category] += e.Amount
		active++
	}

	if active == 0 {
		fmt.Println(cli.InfoStyle.Render("No active expenses."))
		return
	}

	// Largest categories first; ties break on name for stable output.
	categories := make([]string, 0, len(totals))
	for name := range totals {
		categories = append(categories, name)
	}
	sort.Slice(categories, func(i, j int) bool {
		if totals[categories[i]] != totals[categories[j]] {
			return totals[categories[i]] > totals[categories[j]]
		}
		return categories[i] < categories[j]
	})

	fmt.Println(cli.BoldStyle.Render("By category:"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	totalExpenses := view.TotalExpenses()
	for _, name := range categories {
		share := 0.0
		if totalExpenses > 0 {
			share = totals[name] / totalExpenses * 100
		}
		fmt.Fprintf(w, "  %s %s\t$%.2f\t%s\n",
			cli.CategorySwatch(view.CategoryColor(name)),
			name,
			totals[name],
			cli.SubtleStyle.Render(fmt.Sprintf("%.1f%%", share)))
	}
}
