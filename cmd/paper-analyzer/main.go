// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-analyzer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd analyzes the document named by its single argument.
var rootCmd = &cobra.Command{
	Use:   "paper-analyzer <file>",
	Short: "Profile the methodology, theories, and citations of a sociology paper",
	Long: `paper-analyzer reads a plain-text research paper and reports its document
statistics, dominant research methodology, sociological theories, key
concepts, research components, citations, and top keywords.

The narrative report is written to stdout. With --export the structured
results are also written to a file whose extension selects the format:
.json (default), .yaml, .md, or .db (SQLite).

Settings are read from ./paper-analyzer.yaml or
~/.config/paper-analyzer/config.yaml, or from the file named by
PAPER_ANALYZER_CONFIG. Any key can be overridden with a PAPER_ANALYZER_
environment variable, for example PAPER_ANALYZER_LOG_LEVEL=debug.`,
	Example: `  paper-analyzer paper.txt
  paper-analyzer paper.txt --export analysis.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().String("export", "", "write structured results to this file")

	setDefaults(viper.GetViper())
}

func initConfig() {
	viper.SetEnvPrefix("PAPER_ANALYZER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile := viper.GetString(keyConfig); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-analyzer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-analyzer"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Past argument validation, failures are about the input, not usage.
	cmd.SilenceUsage = true

	s := loadSettings(viper.GetViper())
	exportPath, _ := cmd.Flags().GetString("export")

	return analyzeFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], exportPath, s)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
