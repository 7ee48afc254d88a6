package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/budgetbot/internal/cli"
	"github.com/Veraticus/budgetbot/internal/common"
	"github.com/Veraticus/budgetbot/internal/ofx"
	"github.com/Veraticus/budgetbot/internal/session"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import expenses from OFX/QFX bank statements",
		Long: `Import debits from OFX or QFX (Quicken) files exported from your bank
into the active profile. Credits are skipped, and transactions sharing a
bank FITID are imported once.

Examples:
  # Import a single file
  budgetbot import-ofx ~/Downloads/checking_jan.qfx

  # Import everything in a directory
  budgetbot import-ofx ~/Downloads/*.qfx

  # Preview without saving
  budgetbot import-ofx --dry-run ~/Downloads/checking_jan.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().Bool("dry-run", false, "preview the import without saving")
	cmd.Flags().StringP("category", "c", "", "category for imported expenses (default: import.category config, then \"Other\")")
	_ = viper.BindPFlag("import.category", cmd.Flags().Lookup("category"))

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	category := viper.GetString("import.category")
	if category == "" {
		category = "Other"
	}

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("Importing OFX files",
		"file_count", len(allFiles),
		"category", category,
		"dry_run", dryRun)

	// Collect entries across files, deduplicating on the bank's FITID.
	var allEntries []ofx.Entry
	seen := make(map[string]bool)
	fileResults := make(map[string]int)

	parser := ofx.NewParser()
	for _, filePath := range allFiles {
		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file",
				"file", filePath,
				"error", err)
			continue
		}

		entries, err := parser.ParseFile(f)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse OFX file",
				"file", filePath,
				"error", err)
			continue
		}

		added := 0
		for _, entry := range entries {
			if entry.FiTID != "" && seen[entry.FiTID] {
				continue
			}
			seen[entry.FiTID] = true
			allEntries = append(allEntries, entry)
			added++
		}

		fileResults[filepath.Base(filePath)] = added
		slog.Info("Processed file",
			"file", filepath.Base(filePath),
			"entries_found", len(entries),
			"added", added,
			"duplicates", len(entries)-added)
	}

	if len(allEntries) == 0 {
		return common.ErrNoTransactions
	}

	fmt.Println("\nFile import summary:")
	var total float64
	for file, count := range fileResults {
		fmt.Printf("  - %s: %d expenses\n", file, count)
	}
	for _, entry := range allEntries {
		total += entry.Amount
	}
	fmt.Printf("Total: %d expenses, $%.2f\n\n", len(allEntries), total)

	if dryRun {
		for _, entry := range allEntries {
			fmt.Printf("  %s  $%.2f  %s\n", entry.Date.String(), entry.Amount, entry.Description)
		}
		fmt.Println(cli.InfoStyle.Render("Dry run complete, nothing saved."))
		return nil
	}

	s, err := initSession()
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(allEntries),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing expenses..."),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}))

	for _, entry := range allEntries {
		if err := s.Apply(session.AddExpenseIntent{Expense: entry.Expense(category)}); err != nil {
			return fmt.Errorf("failed to save imported expense: %w", err)
		}
		_ = bar.Add(1)
	}

	fmt.Printf("%s %d expenses into profile %s\n",
		cli.SuccessStyle.Render("Imported"), len(allEntries), s.ActiveProfileID())
	return nil
}
