// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/shell-preferences/internal/preferences"
	"github.com/spf13/cobra"
)

func (a *App) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "get [section]",
		Short:     "Print the resolved preferences, or one section of them",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: preferences.SectionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 1 {
				section, err := a.adapter.Section(ctx, args[0])
				if err != nil {
					a.logger.Err(err).Str("section", args[0]).Msg("error getting section")
					return err
				}
				return printSection(cmd.OutOrStdout(), args[0], section, a.output)
			}

			resolved, err := a.adapter.Preferences(ctx)
			if err != nil {
				a.logger.Err(err).Msg("error getting preferences")
				return err
			}
			return printPreferences(cmd.OutOrStdout(), resolved, a.output)
		},
	}
}

func (a *App) defaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the built-in default preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defaults, err := a.adapter.Defaults(cmd.Context())
			if err != nil {
				a.logger.Err(err).Msg("error getting defaults")
				return err
			}
			return printPreferences(cmd.OutOrStdout(), defaults, a.output)
		},
	}
}

func (a *App) overridesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overrides",
		Short: "Print the project overrides applied on top of the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := a.adapter.Overrides(cmd.Context())
			if err != nil {
				a.logger.Err(err).Msg("error getting overrides")
				return err
			}
			return printPreferences(cmd.OutOrStdout(), overrides, a.output)
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverVersion, err := a.adapter.Version(cmd.Context())
			if err != nil {
				a.logger.Err(err).Msg("error getting server version")
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "client: %s\nserver: %s\n", a.buildVersion, serverVersion)
			return err
		},
	}
}

func (a *App) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the resolved preferences interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.newBrowser(a.adapter, a.logger).Browse(cmd.Context())
		},
	}
}
