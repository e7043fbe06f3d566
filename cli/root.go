// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: cobra root command, shared flags and engine bootstrap.

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/collabgraph/config"
	"github.com/katalvlaran/collabgraph/core"
	"github.com/katalvlaran/collabgraph/engine"
	"github.com/katalvlaran/collabgraph/export"
	"github.com/katalvlaran/collabgraph/logging"
	"github.com/katalvlaran/collabgraph/store"
)

// ClientFactory opens the graph database used by the export command.
type ClientFactory func(ctx context.Context, opts export.Options) (export.Client, error)

// app carries flag values and lazily built dependencies across commands.
type app struct {
	configPath string
	reduced    bool
	verbose    bool

	cfg       *config.Config
	logger    *logrus.Logger
	newClient ClientFactory
}

// NewRootCommand builds the command tree. A nil factory uses Neo4j.
func NewRootCommand(version string, newClient ClientFactory) *cobra.Command {
	if newClient == nil {
		newClient = export.NewNeo4jClient
	}
	a := &app{newClient: newClient}

	root := &cobra.Command{
		Use:           "collabgraph",
		Short:         "Query a weighted co-authorship graph built from a publication dataset.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.reduced, "reduced", "r", false, "use the reduced dataset")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newBuildCommand(a),
		newPathCommand(a),
		newNeighborhoodCommand(a),
		newGroupsCommand(a),
		newConferenceCommand(a),
		newExportCommand(a),
		newGenerateCommand(),
	)

	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, version string) int {
	root := NewRootCommand(version, nil)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		return 1
	}

	return 0
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = logrus.DebugLevel.String()
	}
	logger, err := logging.NewWithOutput(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

func (a *app) variant() store.Variant {
	if a.reduced {
		return store.VariantReduced
	}
	return store.VariantFull
}

func (a *app) open(ctx context.Context, opts ...engine.Option) (*engine.Engine, error) {
	return engine.Open(ctx, a.cfg, a.variant(), a.logger, opts...)
}

func parseAuthorID(s string) (core.AuthorID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid author id %q: %w", s, err)
	}
	return core.AuthorID(id), nil
}
