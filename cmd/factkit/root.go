// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"errors"
	"log/slog"

	"github.com/factkit/factkit/internal/config"
	"github.com/factkit/factkit/internal/dataset"
	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the per-invocation state shared by subcommands. Each root
// command owns its own viper instance so tests can build many in one process.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *slog.Logger
	theme  theme
}

// NewRootCmd creates the root factkit command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "factkit",
		Short:         "factkit: filter products and query relationship facts",
		Long:          "factkit filters a product catalog with composable specifications and answers parent, child, sibling and spouse queries over a relationship store.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags, bound to viper keys in setup.
	root.PersistentFlags().StringP("config", "c", "", "path to config file")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringP("dataset", "d", "", "path to dataset YAML (default: built-in demo data)")
	root.PersistentFlags().StringP("output", "o", "", "output format: text or json")

	root.AddCommand(
		newProductsCmd(a),
		newRelationsCmd(a),
		newAuditCmd(a),
		newDemoCmd(a),
		newInitCmd(),
		newVersionCmd(),
	)

	return root
}

// setup applies the standard precedence (flag > env > file > defaults) and
// builds the logger and output theme.
func (a *app) setup(cmd *cobra.Command) error {
	v := a.v

	config.SetDefaults(v)
	config.SetupEnv(v)

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fkerr.Errorf(fkerr.CodeConfigLoadReadFailure, "reading config file: %w", err)
		}
	} else {
		// SetConfigType is omitted so viper does not try the bare name,
		// which would match a ./factkit binary.
		v.SetConfigName("factkit")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/factkit")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fkerr.Errorf(fkerr.CodeConfigLoadReadFailure, "reading config: %w", err)
			}
		}
	}

	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"dataset.path":  "dataset",
		"output.format": "output",
		"verbose":       "verbose",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fkerr.Errorf(fkerr.CodeCLISetupFailure, "binding %s flag: %w", flag, err)
		}
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.SlogLevel()
	if v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.theme = newTheme(cmd.OutOrStdout(), cfg.Output.Color)

	if cfgFile := v.ConfigFileUsed(); cfgFile != "" {
		a.logger.Debug("config loaded", "path", cfgFile)
	}
	return nil
}

// dataset loads the configured dataset, or the demo data when none is set.
func (a *app) dataset() (*dataset.Dataset, error) {
	if a.cfg.Dataset.Path == "" {
		a.logger.Debug("no dataset configured; using demo data")
		return dataset.Demo(a.logger), nil
	}
	return dataset.Load(a.cfg.Dataset.Path, a.logger)
}

func (a *app) jsonOutput() bool {
	return a.cfg.Output.Format == config.FormatJSON
}

// withFormat returns a copy of a rendering in format.
func (a *app) withFormat(format string) *app {
	cfg := *a.cfg
	cfg.Output.Format = format
	c := *a
	c.cfg = &cfg
	return &c
}
