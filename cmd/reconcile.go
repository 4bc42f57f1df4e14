package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"asset-audit/core/config"
	"asset-audit/core/database"
	"asset-audit/core/logger"
	"asset-audit/core/reconcile"
	"asset-audit/feature/assets"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	codesFile  string
	jsonOutput bool
)

// reconcileCmd reconciles scanned codes against a location from the command line.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <location> [codes...]",
	Short: "Reconcile scanned codes against a location",
	Long: `Classifies scanned asset codes into verified, missing and foreign for a location,
using the asset registry in the configured database. Nothing is stored.

Examples:
  # Codes as arguments
  reconcile "Room 101" A1 A2 A3

  # Codes from a file, one per line, with a detailed JSON report
  reconcile "Room 101" --file scans.txt --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&codesFile, "file", "", "Read codes from a file, one per line ('-' for stdin)")
	reconcileCmd.Flags().BoolVar(&jsonOutput, "json", false, "Save the detailed result as JSON")
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	startTime := time.Now()

	location := args[0]
	codes := args[1:]
	if codesFile != "" {
		fromFile, err := loadCodes(codesFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		codes = append(codes, fromFile...)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required: %w", err)
	}

	result, err := reconcile.Reconcile(ctx, assets.NewRepository(db), location, codes)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	if jsonOutput {
		filename, err := saveResult(result, time.Now())
		if err != nil {
			return err
		}
		logg.Info("Detailed JSON report saved", zap.String("file", filename))
	}

	executionTime := time.Since(startTime)
	printMetrics(cmd.OutOrStdout(), result, executionTime)

	logg.Info("Reconciliation completed",
		zap.String("location", result.Location),
		zap.Int("scanned", result.TotalScanned),
		zap.Int("expected", result.TotalExpected),
		zap.Int("verified", result.VerifiedCount),
		zap.Int("missing", result.MissingCount),
		zap.Int("foreign", result.ForeignCount),
		zap.Duration("execution_time", executionTime),
	)
	return nil
}

func loadCodes(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return readCodes(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open codes file: %w", err)
	}
	defer f.Close()
	return readCodes(f)
}

// readCodes returns one code per non-empty line. Lines starting with '#' are comments.
func readCodes(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read codes: %w", err)
	}
	return codes, nil
}

func saveResult(result *reconcile.Result, now time.Time) (string, error) {
	slug := strings.ToLower(strings.Join(strings.Fields(result.Location), "_"))
	filename := fmt.Sprintf("reconcile_%s_%d.json", slug, now.Unix())
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save JSON file: %w", err)
	}
	return filename, nil
}

func printMetrics(w io.Writer, result *reconcile.Result, elapsed time.Duration) {
	fmt.Fprintln(w, "\n=== Reconciliation Metrics ===")
	fmt.Fprintf(w, "Location: %s\n", result.Location)
	fmt.Fprintf(w, "Scanned: %d\n", result.TotalScanned)
	fmt.Fprintf(w, "Expected: %d\n", result.TotalExpected)
	fmt.Fprintf(w, "Verified: %d\n", result.VerifiedCount)
	fmt.Fprintf(w, "Missing: %d\n", result.MissingCount)
	fmt.Fprintf(w, "Foreign: %d\n", result.ForeignCount)
	for _, f := range result.Foreign {
		fmt.Fprintf(w, "  %s -> %s\n", f.Code, f.ActualLocation)
	}
	fmt.Fprintf(w, "Execution Time: %s\n", elapsed.String())
}
