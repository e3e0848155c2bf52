// Package cmd provides the command-line interface for mstparse with
// configuration from multiple sources.
//
// Configuration precedence, highest first:
//  1. Command-line flags (--max-depth, --output, ...)
//  2. MSTPARSE_CONFIG_FILE environment variable - custom config file path
//  3. Individual environment variables (MSTPARSE_LIMITS_MAX_DEPTH, ...)
//  4. Configuration file (.mstparse.yml)
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/mstparse/internal/config"
	"github.com/conneroisu/mstparse/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mstparse",
	Short: "Parse mustache-style {{...}} templates into an AST",
	Long: `mstparse tokenizes mustache-style template text into a tree of literal
text and variable nodes, supporting arbitrarily nested tags like {{a{{b}}}}.
It performs no rendering or substitution and enforces configurable resource
limits so hostile input cannot drive unbounded recursion or memory growth.

Quick Start:
  mstparse parse 'Hello {{name}}!'        Parse an inline template
  mstparse parse -f template.mst -o json  Parse a file, print JSON
  mstparse watch template.mst             Re-parse on every save
  mstparse version                        Show build information`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .mstparse.yml, can also use MSTPARSE_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text or json)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig wires up viper: explicit --config file, then the
// MSTPARSE_CONFIG_FILE env var, then .mstparse.yml in the current directory,
// with MSTPARSE_-prefixed environment variables overriding file values.
func initConfig() {
	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("MSTPARSE_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mstparse")
	}

	viper.SetEnvPrefix("MSTPARSE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; defaults and env vars still apply.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the CLI logger from the loaded configuration.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
}
