package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bmicalc/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	v       = config.NewViper()
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "bmicalc",
	Short: "Body Mass Index calculator",
	Long: `bmicalc computes Body Mass Index from weight and height, classifies it
into Underweight, Normal Weight, Overweight or Obese, and reports the ideal
weight range for the given height.

It runs as a one-shot CLI (calc), an HTTP service with per-user history
(serve) or an MCP tool server over stdio (mcp).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (settings may also come from BMICALC_* env vars)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig merges the config file, if any, into v.
func initConfig() {
	if err := config.ReadFile(v, cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds a production JSON logger on stderr, leaving stdout free
// for command output and the MCP stdio transport.
func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level.SetLevel(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
