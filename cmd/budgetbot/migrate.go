package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budgetbot/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate a legacy single-file budget to the profile layout",
		Long: `Split a legacy budget.json into the shared files, a "main" profile, and
a config. The migration also runs automatically on first use; this
command only exists to run it explicitly and report the result. It is
idempotent: once config.json exists, nothing happens.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}

			migrated, err := store.MigrateLegacyBudget()
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			if !migrated {
				fmt.Println(cli.InfoStyle.Render("Nothing to migrate."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Migrated") + " legacy budget into the profile layout.")
			return nil
		},
	}
}
