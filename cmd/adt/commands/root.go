// Package commands provides the CLI commands for the adt tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	config "martianoff/adt/internal/config"
)

// NewRootCommand builds the adt command tree.
func NewRootCommand() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "adt",
		Short: "Inspect how Either values of two Go types are stored",
		Long: `adt reports the storage strategy the std package picks for Either[L, R].

Usage:
  adt strategy io.Reader *os.File   Analyze a pair of types
  adt types                         List the type names strategy accepts
  adt version                       Print version`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfiguration(cmd, configFile); err != nil {
				return err
			}

			logger, err := setupLogger(config.GetLogLevel())
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().StringP("output", "o", config.OutputText, "output format (text or yaml)")

	rootCmd.AddCommand(newStrategyCmd())
	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func setupLogger(level string) (*zap.Logger, error) {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		// stdout carries the reports.
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	loggerCfg.Level = atomicLogLevel

	return loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
}
