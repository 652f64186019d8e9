package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cashflow-insight/backend/pkg/analysis"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var flagSavings string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.csv>",
	Short: "Analyze a local CSV statement and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&flagSavings, "savings", "s", "0", "Current savings")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd.ErrOrStderr()); err != nil {
		return err
	}

	savings, err := decimal.NewFromString(flagSavings)
	if err != nil {
		return fmt.Errorf("--savings must be a number, got '%s'", flagSavings)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := analysis.Analyze(f, savings)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result.Report())
}
