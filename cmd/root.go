/*
Copyright 2026 The KubeLB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"k8c.io/ingress-report/internal/logger"
)

var (
	// Logging configuration
	verbosityLevel int
	logLevel       string
	logFormat      string
	logFile        string
	quiet          bool
)

var rootCmd = &cobra.Command{
	Use:   "ingress-report",
	Short: "Summarize cached cluster ingress snapshots as Markdown reports",
	Long: `ingress-report turns cached per-cluster ingress snapshots into
human-readable Markdown summaries and a cross-cluster issues report.

Snapshots are collected by a separate step; this tool only reads the cached
files, it never talks to a cluster.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := initializeLogger(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func Execute() error {
	// Create base context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// initializeLogger sets up the global logger based on CLI flags and environment variables.
func initializeLogger() error {
	config := logger.DefaultConfig()

	// Apply environment variables first
	if envLevel := os.Getenv("INGRESS_REPORT_LOG_LEVEL"); envLevel != "" {
		config.Level = logger.ParseLevel(envLevel)
	}

	if envFormat := os.Getenv("INGRESS_REPORT_LOG_FORMAT"); envFormat != "" {
		switch envFormat {
		case "cli":
			config.Format = logger.FormatCLI
		case "json":
			config.Format = logger.FormatJSON
		case "text":
			config.Format = logger.FormatText
		}
	}

	if envPath := os.Getenv("INGRESS_REPORT_LOG_PATH"); envPath != "" {
		logFile = envPath
	}

	// Apply CLI flags (override environment variables)
	if logLevel != "" {
		config.Level = logger.ParseLevel(logLevel)
	}

	if logFormat != "" {
		switch logFormat {
		case "cli":
			config.Format = logger.FormatCLI
		case "json":
			config.Format = logger.FormatJSON
		case "text":
			config.Format = logger.FormatText
		default:
			return fmt.Errorf("invalid log format: %s (must be cli, json, or text)", logFormat)
		}
	}

	// Handle log file output
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		config.Output = file
	}

	// Apply quiet flag
	if quiet {
		config.Level = logger.LevelError
		verbosityLevel = 0
	}

	config.VerbosityLevel = verbosityLevel

	// Map verbosity level to log level if not explicitly set
	if logLevel == "" && os.Getenv("INGRESS_REPORT_LOG_LEVEL") == "" {
		switch verbosityLevel {
		case 0:
			config.Level = logger.LevelError
		case 1, 2:
			config.Level = logger.LevelInfo
		case 3:
			config.Level = logger.LevelDebug
		case 4:
			config.Level = logger.LevelTrace
		default:
			config.Level = logger.LevelInfo
		}
	}

	logger.Setup(config)

	return nil
}

func init() {
	// Logging flags
	rootCmd.PersistentFlags().IntVarP(&verbosityLevel, "v", "v", 1, "Verbosity level (0-4): 0=errors only, 1=basic info, 2=detailed status, 3=debug info, 4=trace")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (error, warn, info, debug, trace) - overrides verbosity")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (cli, json, text) - defaults to cli")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log to file instead of stderr")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output (equivalent to --v=0)")

	rootCmd.AddCommand(
		reportCmd(),
		versionCmd(),
		docsCmd(),
	)
}
