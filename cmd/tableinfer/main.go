// Package main provides the CLI entry point for tableinfer-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer"
	"github.com/tablekit/tableinfer-go/pkg/tableinfer/output"
)

var (
	outputPath   string
	pretty       bool
	mode         string
	configPath   string
	useGaps      bool
	gapThreshold int
	sheetsDir    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tableinfer [input.xlsx]",
		Short: "Infer table structure from spreadsheet cell grids",
		Long: `tableinfer-go partitions each sheet of an Excel file into table
regions, resolves header rows/columns, builds hierarchical labels,
and outputs the detected tables as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&mode, "mode", "verbose", "Assembly mode: verbose, compact")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML options file")
	rootCmd.Flags().BoolVar(&useGaps, "use-gaps", false, "Enable the fixed-threshold gap splitter")
	rootCmd.Flags().IntVar(&gapThreshold, "gap-threshold", 0, "Blank-row gap threshold for the gap splitter")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", tableinfer.ErrFileNotFound, inputPath)
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	wb, err := tableinfer.Infer(inputPath, opts)
	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Println(string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func buildOptions() (tableinfer.Options, error) {
	opts := tableinfer.DefaultOptions()
	if configPath != "" {
		loaded, err := tableinfer.LoadOptions(configPath)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	switch mode {
	case "verbose":
		opts.Mode = tableinfer.ModeVerbose
	case "compact":
		opts.Mode = tableinfer.ModeCompact
	default:
		return opts, fmt.Errorf("invalid mode: %s (must be verbose or compact)", mode)
	}

	if useGaps {
		opts.UseGaps = true
	}
	if gapThreshold > 0 {
		opts.GapThreshold = gapThreshold
	}
	return opts, nil
}

func writeSheetFiles(wb *tableinfer.WorkbookTables, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheet := range wb.Sheets {
		jsonData, err := output.SheetToJSON(sheet.Tables, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheet.SheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
