package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbot/internal/cli"
	"github.com/Veraticus/budgetbot/internal/session"
)

func templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "Manage reusable budget templates",
		Long: `Templates are named snapshots of a profile's expenses, shared across
all profiles. Loading a template replaces the active profile's expenses
with fresh copies; appending adds copies alongside what is already there.`,
	}

	cmd.AddCommand(listTemplatesCmd())
	cmd.AddCommand(saveTemplateCmd())
	cmd.AddCommand(loadTemplateCmd())
	cmd.AddCommand(appendTemplateCmd())
	cmd.AddCommand(updateTemplateCmd())
	cmd.AddCommand(deleteTemplateCmd())
	cmd.AddCommand(renameTemplateCmd())

	return cmd
}

func listTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all shared templates",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			templates := s.Budget().Templates
			if len(templates) == 0 {
				fmt.Println(cli.InfoStyle.Render("No templates yet. Use 'budgetbot templates save' to snapshot the current expenses."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Expenses"),
				cli.BoldStyle.Render("Total"))
			for _, t := range templates {
				fmt.Fprintf(w, "%s\t%s\t%d\t$%.2f\n",
					cli.SubtleStyle.Render(t.ID.String()[:8]),
					t.Name,
					len(t.Expenses),
					t.Total())
			}
			return nil
		},
	}
}

func saveTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "Snapshot the active profile's expenses as a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			count := len(s.Budget().Expenses)
			if err := s.Apply(session.SaveTemplateIntent{Name: args[0]}); err != nil {
				return fmt.Errorf("failed to save template: %w", err)
			}
			fmt.Printf("%s template %q with %d expenses\n", cli.SuccessStyle.Render("Saved"), args[0], count)
			return nil
		},
	}
}

func loadTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <template>",
		Short: "Replace the active profile's expenses with a template",
		Long: `Replace the active profile's expenses wholesale with fresh copies of
the template's expenses. The current expenses are discarded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			tmpl, err := resolveTemplate(s.Budget(), args[0])
			if err != nil {
				return err
			}

			if err := s.Apply(session.LoadTemplateIntent{ID: tmpl.ID}); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			fmt.Printf("%s template %q (%d expenses)\n", cli.SuccessStyle.Render("Loaded"), tmpl.Name, len(tmpl.Expenses))
			return nil
		},
	}
}

func appendTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append <template>",
		Short: "Add a template's expenses to the active profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			tmpl, err := resolveTemplate(s.Budget(), args[0])
			if err != nil {
				return err
			}

			if err := s.Apply(session.AppendTemplateIntent{ID: tmpl.ID}); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			fmt.Printf("%s %d expenses from template %q\n", cli.SuccessStyle.Render("Appended"), len(tmpl.Expenses), tmpl.Name)
			return nil
		},
	}
}

func updateTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <template>",
		Short: "Re-snapshot the active profile's expenses into a template",
		Long: `Replace a template's stored expenses with the active profile's current
expenses. The template keeps its identifier and name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			view := s.Budget()
			tmpl, err := resolveTemplate(view, args[0])
			if err != nil {
				return err
			}

			if err := s.Apply(session.UpdateTemplateIntent{ID: tmpl.ID, Expenses: view.Expenses}); err != nil {
				return fmt.Errorf("failed to save templates: %w", err)
			}
			fmt.Printf("%s template %q with %d expenses\n", cli.SuccessStyle.Render("Updated"), tmpl.Name, len(view.Expenses))
			return nil
		},
	}
}

func deleteTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <template>",
		Short: "Delete a shared template",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			tmpl, err := resolveTemplate(s.Budget(), args[0])
			if err != nil {
				return err
			}

			if err := s.Apply(session.DeleteTemplateIntent{ID: tmpl.ID}); err != nil {
				return fmt.Errorf("failed to save templates: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Deleted ") + tmpl.Name)
			return nil
		},
	}
}

func renameTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <template> <name>",
		Short: "Rename a shared template",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			tmpl, err := resolveTemplate(s.Budget(), args[0])
			if err != nil {
				return err
			}

			if err := s.Apply(session.RenameTemplateIntent{ID: tmpl.ID, Name: args[1]}); err != nil {
				return fmt.Errorf("failed to save templates: %w", err)
			}
			fmt.Printf("%s %q to %q\n", cli.SuccessStyle.Render("Renamed"), tmpl.Name, args[1])
			return nil
		},
	}
}
