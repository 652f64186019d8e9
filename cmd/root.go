// Package cmd implements the cashflow CLI commands.
package cmd

import (
	"io"
	"os"

	"github.com/cashflow-insight/backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagEnvFile string

var rootCmd = &cobra.Command{
	Use:           "cashflow",
	Short:         "Cash flow insight",
	Long:          "Analyze CSV bank statements: burn rate, spending categories, safety buffer and a 12 month balance projection.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("cashflow")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "File to load environment variables from, skipped if it does not exist")
}

// loadConfig loads the configuration and sets up gin and the global logger for it.
func loadConfig(out io.Writer) (config.Config, error) {
	c, err := config.Load(flagEnvFile)
	if err != nil {
		return config.Config{}, err
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(c.GinMode)

	output := out
	if c.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	return c, nil
}
