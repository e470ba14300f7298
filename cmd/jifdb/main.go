// Package main provides the CLI entry point for jifdb-go.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/plasmalab/jifdb-go/pkg/jifdb"
	"github.com/plasmalab/jifdb-go/pkg/jifdb/models"
	"github.com/plasmalab/jifdb-go/pkg/jifdb/output"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	compact    bool
	headerRow  int
	year       int
	sheet      string
	verbose    bool
)

const (
	defaultOutput  = "journalImpactFactors.json"
	summarySamples = 5
	previewRows    = 3
)

func main() {
	// A .env file can pin the input and output paths for repeated runs.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "jifdb [input.xlsx]",
		Short: "Build a journal impact-factor lookup table from JCR ranking sheets",
		Long: `jifdb-go reads an Excel workbook of academic journal rankings (JCR
lists with English or Korean column headers) and writes a JSON lookup
table keyed by journal name, for consumption by downstream applications.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExtract,
	}

	rootCmd.PersistentFlags().IntVar(&headerRow, "header-row", jifdb.HeaderRowAuto,
		"0-based header row index (-1 = auto-detect per sheet)")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Restrict processing to one sheet")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log per-sheet progress")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output file path (default: $JIFDB_OUTPUT or "+defaultOutput+")")
	rootCmd.Flags().BoolVar(&compact, "compact", false, "Suppress JSON indentation")
	rootCmd.Flags().IntVar(&year, "year", jifdb.DefaultYear, "JCR edition year stamped on records")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print workbook structure without writing JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// inputPath resolves the workbook path from the positional argument or the
// JIFDB_INPUT environment variable.
func inputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if p := os.Getenv("JIFDB_INPUT"); p != "" {
		return p, nil
	}
	return "", errors.New("no input workbook: pass a path or set JIFDB_INPUT")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func extractOptions() jifdb.Options {
	return jifdb.Options{
		HeaderRow: headerRow,
		Year:      year,
		Sheet:     sheet,
		Logger:    newLogger(),
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	input, err := inputPath(args)
	if err != nil {
		return err
	}
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", jifdb.ErrFileNotFound, input)
	}

	db, err := jifdb.Extract(input, extractOptions())
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	db = jifdb.FilterByImpactFactor(db)

	out := outputPath
	if out == "" {
		out = os.Getenv("JIFDB_OUTPUT")
	}
	if out == "" {
		out = defaultOutput
	}
	if err := output.WriteFile(db, out, !compact); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printSummary(db, out)
	return nil
}

func printSummary(db models.Database, out string) {
	s := jifdb.Summarize(db, summarySamples)
	fmt.Printf("Created journal database with %d unique journals: %s\n", s.UniqueJournals, out)
	if len(s.Samples) == 0 {
		return
	}
	fmt.Println("Sample entries:")
	for _, rec := range s.Samples {
		fmt.Printf("  %s: IF=%g, Percentile=%g, Sheet=%s\n",
			rec.OriginalName, rec.ImpactFactor, rec.Percentile, rec.Sheet)
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, err := inputPath(args)
	if err != nil {
		return err
	}
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", jifdb.ErrFileNotFound, input)
	}

	reports, err := jifdb.Inspect(input, extractOptions(), previewRows)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	for _, r := range reports {
		fmt.Printf("===== Sheet: %s =====\n", r.Name)
		fmt.Printf("Shape: %d rows x %d columns\n", r.RowCount, r.ColCount)
		if r.HeaderRow < 0 {
			fmt.Println("Header row: not found")
			continue
		}
		fmt.Printf("Header row: %d\n", r.HeaderRow)
		fmt.Printf("Columns: %s\n", strings.Join(r.Headers, " | "))
		for field, idx := range r.Columns {
			fmt.Printf("  %s -> column %d (%s)\n", field, idx, r.Headers[idx])
		}
		for _, row := range r.Preview {
			fmt.Printf("  %s\n", strings.Join(row, " | "))
		}
	}
	return nil
}
