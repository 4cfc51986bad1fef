package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	logLevel string
	noStyle  bool
)

var rootCmd = &cobra.Command{
	Use:   "fundpicker",
	Short: "Risk-based mutual fund recommendations",
	Long: `FundPicker recommends mutual funds for an investment amount and a risk appetite.

Funds are filtered by the categories allowed for the chosen risk tier
(low, medium, high), the three with the highest yearly ROI are picked,
and the amount is split equally between them.

It runs as a Telegram bot, an interactive terminal session, or a one-shot command.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaultCfg := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultCfg = v
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultCfg, "path to YAML config (env CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noStyle, "no-style", false, "print raw Markdown even on a terminal")
}
