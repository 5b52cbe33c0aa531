package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvminor/builder"
	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/internal/session"
)

// seedGraph builds the reference graph, or a rows×cols grid when both are > 0.
func seedGraph(rows, cols int) (*core.Graph, error) {
	if rows > 0 && cols > 0 {
		return builder.BuildGraph(nil, builder.Grid(rows, cols))
	}
	return builder.Reference()
}

func demoCmd(opts *options) *cobra.Command {
	var (
		steps      int
		rows, cols int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Branch the seed graph along its first edge repeatedly and print the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.load(cmd, cmd.ErrOrStderr()); err != nil {
				return err
			}
			s, err := session.New(opts.cfg, nil)
			if err != nil {
				return err
			}
			g, err := seedGraph(rows, cols)
			if err != nil {
				return err
			}
			if err = s.Seed(g); err != nil {
				return err
			}

			ctx := cmd.Context()
			ticks := map[*core.Graph]int{}
			relax := func(g *core.Graph) error {
				n, _, err := s.Relax(ctx, g)
				ticks[g] = n
				return err
			}
			if err = relax(g); err != nil {
				return err
			}

			layer, slot := 0, 0
			for i := 0; i < steps; i++ {
				cur, err := s.Tree.Slot(layer, slot)
				if err != nil {
					return err
				}
				edges := cur.Edges()
				if len(edges) == 0 {
					break
				}
				e := edges[0]
				del, con, err := s.Tree.BranchNodes(layer, slot, e.U.ID, e.V.ID)
				if err != nil {
					return err
				}
				if err = relax(del.Graph); err != nil {
					return err
				}
				if err = relax(con.Graph); err != nil {
					return err
				}
				layer, slot = con.Layer, con.Slot
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s depth %d, history %d\n\n", Brand.Sprint("lvminor"), s.Tree.Depth(), s.Tree.HistoryLen())
			var rowsOut [][]string
			for _, a := range s.Tree.Live() {
				rowsOut = append(rowsOut, []string{
					a.String(),
					fmt.Sprint(a.Graph.Len()),
					fmt.Sprint(a.Graph.EdgeCount()),
					fmt.Sprint(ticks[a.Graph]),
					Mark(a.Graph.Settled()),
				})
			}
			Table(out, []string{"SLOT", "NODES", "EDGES", "TICKS", "SETTLED"}, rowsOut)

			undone := 0
			for s.Tree.Revert() {
				undone++
			}
			fmt.Fprintf(out, "\n%s %d edits undone\n", Info.Sprint("undo:"), undone)

			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 3, "number of branch steps")
	cmd.Flags().IntVar(&rows, "rows", 0, "seed with a grid of this many rows (with --cols)")
	cmd.Flags().IntVar(&cols, "cols", 0, "seed with a grid of this many columns (with --rows)")

	return cmd
}
