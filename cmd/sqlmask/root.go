package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuannm99/sqlmask/internal"
)

var (
	// Set during PersistentPreRunE
	cfg *internal.SqlMaskConfig

	// Persistent flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sqlmask",
	Short: "Pseudonymize column names in SQL SELECT statements",
	Long: `sqlmask - SQL column pseudonymizer

sqlmask parses a restricted SELECT statement, replaces every projected
column with the MD5 digest of its name and renders the statement back to SQL.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = internal.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(anonymizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// resolveString returns the first non-empty string: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
