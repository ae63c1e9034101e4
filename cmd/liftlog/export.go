// ABOUTME: CLI commands for exporting and importing training data.
// ABOUTME: Writes JSON or YAML snapshots and restores them into a store.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/akontos/liftlog/internal/storage"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your training data",
	Long: `Export all of your training data as a single JSON or YAML document:
resistance sets, mobility, cardio, body metrics and 1RM records.

EXAMPLES:

  liftlog export > backup.json
  liftlog export --format yaml -o backup.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		var data []byte
		switch exportFormat {
		case "json":
			data, err = repo.ExportJSON(user.ID)
		case "yaml", "yml":
			data, err = repo.ExportYAML(user.ID)
		default:
			return fmt.Errorf("unknown format: %s (want json or yaml)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import training data from a file",
	Long: `Import a previously exported snapshot into your account. The file
format is detected from its extension (.json, .yaml, .yml). Imported
rows are added to your data; nothing is deleted first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var data storage.ExportData
		switch strings.ToLower(filepath.Ext(args[0])) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(raw, &data)
		default:
			err = json.Unmarshal(raw, &data)
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		if err := repo.ImportData(user.ID, &data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d sets, %d mobility, %d cardio, %d metrics, %d 1RMs",
			len(data.Resistance), len(data.Mobility), len(data.Cardio),
			len(data.BodyMetrics), len(data.OneRepMaxes))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format (json or yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
