// SPDX-License-Identifier: MIT
//
// File: commands.go
// Role: One constructor per subcommand.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/collabgraph/builder"
	"github.com/katalvlaran/collabgraph/core"
	"github.com/katalvlaran/collabgraph/dijkstra"
	"github.com/katalvlaran/collabgraph/engine"
	"github.com/katalvlaran/collabgraph/export"
)

func newBuildCommand(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Load the cached graph or build it from the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.open(cmd.Context(), engine.WithRebuild(force))
			if err != nil {
				return err
			}
			g := e.Graph()
			fmt.Fprintf(cmd.OutOrStdout(), "source: %s\nnodes: %d\nedges: %d\n", e.Source(), g.NodeCount(), g.EdgeCount())
			if st := e.BuildStats(); st != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "records: %d\nskipped: %d\n", st.Records, st.Skipped)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "ignore the cache and rebuild")

	return cmd
}

func newPathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <author-id>",
		Short: "Shortest weighted path from the hub author to an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAuthorID(args[0])
			if err != nil {
				return err
			}
			e, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			path, err := e.PathToHub(id)
			if errors.Is(err, dijkstra.ErrNoPath) {
				fmt.Fprintf(cmd.OutOrStdout(), "no path between the hub and author %d\n", id)
				return nil
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range path {
				fmt.Fprintf(out, "%d\t%s\t%.4f\n", s.ID, s.Name, s.Distance)
			}
			fmt.Fprintf(out, "distance: %.4f\n", path[len(path)-1].Distance)
			return nil
		},
	}
}

func newNeighborhoodCommand(a *app) *cobra.Command {
	var hops int
	cmd := &cobra.Command{
		Use:   "neighborhood <author-id>",
		Short: "Authors within a number of hops and the subgraph they induce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAuthorID(args[0])
			if err != nil {
				return err
			}
			e, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			rep, err := e.Neighborhood(cmd.Context(), id, hops)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for d, shell := range rep.Shells {
				fmt.Fprintf(out, "hop %d: %d authors\n", d, len(shell))
			}
			fmt.Fprintf(out, "nodes: %d\nedges: %d\n", rep.Size(), rep.Subgraph.EdgeCount())
			fmt.Fprintf(out, "coverage: %.2f%% of a component of %d authors\n", rep.Coverage, rep.ComponentSize)
			return nil
		},
	}
	cmd.Flags().IntVarP(&hops, "hops", "d", 1, "maximum hop distance")

	return cmd
}

func newGroupsCommand(a *app) *cobra.Command {
	var (
		seeds []string
		out   string
	)
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Label every author with the distance to its nearest seed author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids := make([]core.AuthorID, 0, len(seeds))
			for _, s := range seeds {
				id, err := parseAuthorID(s)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			e, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			labels, err := e.GroupNumbers(cmd.Context(), ids)
			if err != nil {
				return err
			}
			data, err := json.Marshal(labels)
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "labeled %d authors (%d reachable) -> %s\n", len(labels), labels.Reached(), out)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&seeds, "seeds", "s", nil, "comma-separated seed author ids")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the labels to this JSON file instead of stdout")

	return cmd
}

func newConferenceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "conference <conference-id>",
		Short: "Subgraph of the authors who published at a conference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid conference id %q: %w", args[0], err)
			}
			e, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			sub := e.ConferenceSubgraph(conf)
			fmt.Fprintf(cmd.OutOrStdout(), "conference %d\nnodes: %d\nedges: %d\n", conf, sub.NodeCount(), sub.EdgeCount())
			return nil
		},
	}
}

func newExportCommand(a *app) *cobra.Command {
	var (
		reset bool
		batch int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the graph to Neo4j",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e, err := a.open(ctx)
			if err != nil {
				return err
			}
			n := a.cfg.Neo4j
			client, err := a.newClient(ctx, export.Options{
				URI:            n.URI,
				Database:       n.Database,
				Username:       n.Username,
				Password:       n.Password,
				MaxConnections: n.MaxConnections,
			})
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			sum, err := e.Export(ctx, client, export.WithReset(reset), export.WithBatchSize(batch))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d authors and %d relationships in %d statements\n",
				sum.Nodes, sum.Edges, sum.Statements)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "delete existing :Author nodes first")
	cmd.Flags().IntVar(&batch, "batch", export.DefaultBatchSize, "rows per statement")

	return cmd
}

func newGenerateCommand() *cobra.Command {
	var (
		authors, publications, maxTeam int
		seed                           int64
		out                            string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic publication dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxTeam < 1 {
				return fmt.Errorf("--max-team must be at least 1, got %d", maxTeam)
			}
			recs, err := builder.Dataset(authors, publications,
				builder.WithSeed(seed),
				builder.WithMaxTeam(maxTeam),
			)
			if err != nil {
				return err
			}
			if out == "" {
				return builder.WriteJSON(cmd.OutOrStdout(), recs)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := builder.WriteJSON(f, recs); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d publications by %d authors -> %s\n", len(recs), authors, out)
			return nil
		},
	}
	cmd.Flags().IntVar(&authors, "authors", 1000, "number of authors")
	cmd.Flags().IntVar(&publications, "publications", 5000, "number of publications")
	cmd.Flags().IntVar(&maxTeam, "max-team", builder.DefaultMaxTeam, "maximum authors per publication")
	cmd.Flags().Int64Var(&seed, "seed", builder.DefaultSeed, "random seed")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout when empty)")

	return cmd
}
