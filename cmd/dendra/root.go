// Package main: root command, configuration and logging for the dendra CLI.
//
// Configuration precedence, highest first: command-line flag, key in the
// viper config file (--config, or ./dendra.yaml when present), flag default.
// Logs go to stderr through slog; results go to stdout unless a command
// offers --out.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Viper keys for the settings a config file may carry. Flag defaults are
// declared once, on the flags themselves; viper falls back to them.
const (
	cfgLinkage      = "cluster.linkage"
	cfgOptimalOrder = "cluster.optimal-order"
	cfgZeroFill     = "matrix.zero-fill"
	cfgDim          = "embed.dim"
)

// defaultConfigName is the config file (dendra.yaml) looked up in the
// working directory when --config is not given.
const defaultConfigName = "dendra"

var (
	cfgFile  string // --config: explicit config file path
	jsonLogs bool   // --json: JSON log handler instead of text
	quiet    bool   // --quiet: raise the log level to warn

	// logger is replaced once flags are parsed; the default covers errors
	// that occur before then (bad flags, unknown commands).
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	rootCmd = &cobra.Command{
		Use:   "dendra",
		Short: "Distance matrices, group trees and embeddings from cluster-map files",
		Long: `dendra turns cluster-map files into labeled distance matrices, runs
agglomerative clustering over them, and embeds them back into coordinates.

Each subcommand is one pipeline stage; stages hand off through CSV, so any
stage can also consume files produced elsewhere.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			logger = newLogger()
			if used := viper.ConfigFileUsed(); used != "" {
				logger.Debug("config loaded", "file", used)
			}

			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./dendra.yaml when present)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false,
		"emit logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"log warnings and errors only")
}

// initConfig wires viper. An explicit --config that cannot be read is an
// error; the implicit ./dendra.yaml is optional.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}

		return nil
	}

	viper.SetConfigName(defaultConfigName)
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// newLogger builds the stderr slog logger from the persistent flags.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if jsonLogs {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(h)
}

// withOutput runs fn against the file at path, or against fallback (the
// command's stdout) when path is empty. File creation and close errors are
// the caller's errors: a matrix that did not reach disk is a failed run.
func withOutput(path string, fallback io.Writer, fn func(io.Writer) error) error {
	if path == "" {
		return fn(fallback)
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(fh); err != nil {
		fh.Close()

		return err
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	logger.Info("written", "path", path)

	return nil
}
