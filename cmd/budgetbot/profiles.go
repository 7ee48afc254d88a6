package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbot/internal/cli"
	"github.com/Veraticus/budgetbot/internal/common"
	"github.com/Veraticus/budgetbot/internal/session"
	"github.com/Veraticus/budgetbot/internal/tui"
)

func profilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"profile"},
		Short:   "Manage budget profiles",
		Long: `Profiles are independent budgets: each has its own income and expenses,
while categories, templates, and presets are shared. Exactly one profile
is active at a time.`,
	}

	cmd.AddCommand(listProfilesCmd())
	cmd.AddCommand(createProfileCmd())
	cmd.AddCommand(duplicateProfileCmd())
	cmd.AddCommand(renameProfileCmd())
	cmd.AddCommand(deleteProfileCmd())
	cmd.AddCommand(switchProfileCmd())
	cmd.AddCommand(nextProfileCmd())
	cmd.AddCommand(selectProfileCmd())

	return cmd
}

func listProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			config := s.Config()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Created"))
			for _, meta := range config.Profiles {
				marker := ""
				if meta.ID == config.ActiveProfileID {
					marker = cli.SuccessStyle.Render("(active)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					meta.ID,
					meta.Name,
					meta.CreatedAt.Format("2006-01-02"),
					marker)
			}
			return nil
		},
	}
}

func createProfileCmd() *cobra.Command {
	var switchTo bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new empty profile",
		Long: `Create a new profile with zero income and no expenses. The identifier
is derived from the name; the session stays on the current profile unless
--switch is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			meta, err := s.CreateProfile(args[0])
			if err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
			fmt.Printf("%s profile %q (%s)\n", cli.SuccessStyle.Render("Created"), meta.Name, meta.ID)

			if switchTo {
				if err := s.Apply(session.SwitchProfileIntent{ID: meta.ID}); err != nil {
					return err
				}
				fmt.Println(cli.SuccessStyle.Render("Switched to ") + meta.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&switchTo, "switch", false, "switch to the new profile after creating it")
	return cmd
}

func duplicateProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <source-id> <name>",
		Short: "Create a profile as a copy of an existing one",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			meta, err := s.DuplicateProfile(args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to duplicate profile: %w", err)
			}
			fmt.Printf("%s %s into %q (%s)\n", cli.SuccessStyle.Render("Duplicated"), args[0], meta.Name, meta.ID)
			return nil
		},
	}
}

func renameProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a profile",
		Long:  `Update a profile's display name. The identifier never changes.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			if err := s.Apply(session.RenameProfileIntent{ID: args[0], Name: args[1]}); err != nil {
				return fmt.Errorf("failed to rename profile: %w", err)
			}
			fmt.Printf("%s %s to %q\n", cli.SuccessStyle.Render("Renamed"), args[0], args[1])
			return nil
		},
	}
}

func deleteProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a profile and its data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			if err := s.Apply(session.DeleteProfileIntent{ID: args[0]}); err != nil {
				if errors.Is(err, common.ErrActiveProfile) {
					return common.NewUserError("cannot delete the active profile; switch to another profile first", err)
				}
				return fmt.Errorf("failed to delete profile: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Deleted ") + args[0])
			return nil
		},
	}
}

func switchProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id>",
		Short: "Make another profile active",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			if err := s.Apply(session.SwitchProfileIntent{ID: args[0]}); err != nil {
				return fmt.Errorf("failed to switch profile: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Switched to ") + args[0])
			return nil
		},
	}
}

func nextProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Cycle to the next profile in registry order",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			if err := s.Apply(session.CycleProfileIntent{}); err != nil {
				return fmt.Errorf("failed to switch profile: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Active profile: ") + s.ActiveProfileID())
			return nil
		},
	}
}

func selectProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select",
		Short: "Pick the active profile interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := initSession()
			if err != nil {
				return err
			}

			intent, err := tui.SelectProfile(s.Config())
			if err != nil {
				return err
			}
			if intent == nil {
				fmt.Println(cli.InfoStyle.Render("Cancelled."))
				return nil
			}

			if err := s.Apply(intent); err != nil {
				return fmt.Errorf("failed to switch profile: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Active profile: ") + s.ActiveProfileID())
			return nil
		},
	}
}
