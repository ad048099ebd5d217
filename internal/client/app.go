// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/shell-preferences/internal/adapter"
	"github.com/MKhiriev/shell-preferences/internal/config"
	"github.com/MKhiriev/shell-preferences/internal/logger"
	"github.com/MKhiriev/shell-preferences/internal/tui"
	"github.com/spf13/cobra"
)

const clientRole = "prefsctl"

type App struct {
	out          io.Writer
	buildVersion string

	loadConfig func(overrides config.ClientAdapter) (*config.ClientConfig, error)
	newLogger  func(path string) *logger.Logger
	newAdapter func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.PreferencesAdapter, error)
	newBrowser func(a adapter.PreferencesAdapter, logger *logger.Logger) Browser

	// flag values
	server     string
	timeout    time.Duration
	outputFlag string

	// set before any subcommand runs
	output  Output
	adapter adapter.PreferencesAdapter
	logger  *logger.Logger
}

// NewApp creates prefsctl writing command results to out.
func NewApp(out io.Writer, buildVersion string) *App {
	return &App{
		out:          out,
		buildVersion: buildVersion,
		loadConfig:   config.GetClientConfig,
		newLogger: func(path string) *logger.Logger {
			return logger.NewClientLogger(clientRole, path)
		},
		newAdapter: adapter.NewHTTPPreferencesAdapter,
		newBrowser: func(a adapter.PreferencesAdapter, logger *logger.Logger) Browser {
			return tui.New(a, logger)
		},
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)

	defer a.close()

	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "prefsctl",
		Short: "Inspect the preferences served by a preferences server",
		Long: `prefsctl reads the admin shell preferences from a running preferences server.

It prints the resolved preferences, the built-in defaults, the project
overrides or a single section, and offers an interactive browser.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.server, "server", "", "preferences server address (default from ADAPTER_ADDRESS)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "request timeout (default from ADAPTER_REQUEST_TIMEOUT)")
	root.PersistentFlags().StringVarP(&a.outputFlag, "output", "o", string(OutputTable), "output format: table, json or yaml")

	root.AddCommand(a.getCommand())
	root.AddCommand(a.defaultsCommand())
	root.AddCommand(a.overridesCommand())
	root.AddCommand(a.versionCommand())
	root.AddCommand(a.browseCommand())

	return root
}

// setup validates the flags and builds the logger and the adapter.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	output, err := parseOutput(a.outputFlag)
	if err != nil {
		return err
	}
	a.output = output

	cfg, err := a.loadConfig(config.ClientAdapter{
		HTTPAddress:    a.server,
		RequestTimeout: a.timeout,
	})
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	a.logger = a.newLogger(cfg.Log.File)
	a.logger.Debug().Str("command", cmd.CommandPath()).Any("adapter", cfg.Adapter).Msg("prefsctl started")

	a.adapter, err = a.newAdapter(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create preferences adapter: %w", err)
	}

	return nil
}

func (a *App) close() {
	if a.logger == nil {
		return
	}
	if err := a.logger.Close(); err != nil {
		fmt.Fprintf(a.out, "close log file: %v\n", err)
	}
}
