package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/explore"
	"github.com/katalvlaran/lvminor/vector"
)

// App is the interactive explorer. It owns the focus (layer, slot, edge) and
// turns key presses into tree operations.
type App struct {
	screen  tcell.Screen
	tree    *explore.Tree
	refresh time.Duration

	layer, slot int
	edge        int
	status      string
	failed      bool
}

// NewApp creates an App focused on the root. refresh is the redraw period
// while the layout moves nodes.
func NewApp(screen tcell.Screen, tree *explore.Tree, refresh time.Duration) *App {
	if refresh <= 0 {
		refresh = 50 * time.Millisecond
	}
	return &App{
		screen:  screen,
		tree:    tree,
		refresh: refresh,
		status:  "←/→ slot  ↑/↓ layer  tab edge  enter branch  a add  x remove  z undo  q quit",
	}
}

// Focus returns the focused layer and slot.
func (a *App) Focus() (layer, slot int) {
	return a.layer, a.slot
}

// Status returns the status line text.
func (a *App) Status() string {
	return a.status
}

// focused returns the focused graph, or nil when the slot is empty.
func (a *App) focused() *core.Graph {
	g, err := a.tree.Slot(a.layer, a.slot)
	if err != nil {
		return nil
	}
	return g
}

// selected returns the selected edge of the focused graph.
func (a *App) selected() (core.Edge, bool) {
	g := a.focused()
	if g == nil {
		return core.Edge{}, false
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return core.Edge{}, false
	}
	return edges[a.edge%len(edges)], true
}

// report sets the status line.
func (a *App) report(err error, format string, args ...any) {
	if err != nil {
		a.status = err.Error()
		a.failed = true
		return
	}
	a.status = fmt.Sprintf(format, args...)
	a.failed = false
}

// live returns the occupied slots of layer.
func (a *App) live(layer int) []int {
	slots, err := a.tree.Layer(layer)
	if err != nil {
		return nil
	}
	var out []int
	for s, g := range slots {
		if g != nil {
			out = append(out, s)
		}
	}
	return out
}

// clamp moves the focus to an occupied slot after the tree changed shape.
func (a *App) clamp() {
	if a.layer > a.tree.Depth() {
		a.layer = a.tree.Depth()
	}
	for a.layer >= 0 {
		if a.focused() != nil {
			return
		}
		if live := a.live(a.layer); len(live) > 0 {
			a.slot = live[0]
			return
		}
		a.layer--
	}
	a.layer, a.slot = 0, 0
}

// step moves to the previous (dir < 0) or next live slot in the layer.
func (a *App) step(dir int) {
	live := a.live(a.layer)
	for k, s := range live {
		if s == a.slot {
			a.slot = live[(k+dir+len(live))%len(live)]
			a.edge = 0
			return
		}
	}
}

// HandleKey applies one key press and reports whether the app should quit.
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		a.step(-1)
	case tcell.KeyRight:
		a.step(1)
	case tcell.KeyUp:
		if p, ok := a.tree.Parent(a.layer, a.slot); ok && p.Graph != nil {
			a.layer, a.slot, a.edge = p.Layer, p.Slot, 0
		}
	case tcell.KeyDown:
		for _, c := range a.tree.Children(a.slot) {
			if g, err := a.tree.Slot(a.layer+1, c); err == nil && g != nil {
				a.layer, a.slot, a.edge = a.layer+1, c, 0
				break
			}
		}
	case tcell.KeyTab:
		a.edge++
	case tcell.KeyEnter:
		a.branch()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'a':
			err := a.tree.Edit(a.layer, a.slot, func(g *core.Graph) error {
				g.AddNode(vector.New(float64(g.Len()%3), float64(g.Len()/3)))
				return nil
			})
			a.report(err, "added a node")
		case 'x':
			err := a.tree.Edit(a.layer, a.slot, func(g *core.Graph) error {
				n, err := g.NodeAt(g.Len() - 1)
				if err != nil {
					return err
				}
				g.RemoveNode(n.ID)
				return nil
			})
			a.report(err, "removed the last node")
		case 'z':
			if a.tree.Revert() {
				a.report(nil, "undone")
			} else {
				a.report(nil, "nothing to undo")
			}
			a.clamp()
		}
	}

	return false
}

// branch deletes and contracts the selected edge into the next layer.
func (a *App) branch() {
	e, ok := a.selected()
	if !ok {
		a.report(nil, "no edge selected")
		return
	}
	del, con, err := a.tree.BranchNodes(a.layer, a.slot, e.U.ID, e.V.ID)
	a.report(err, "branched into %s (deleted) and %s (contracted)", del, con)
}

// Draw renders the focused graph, a header and the status line.
func (a *App) Draw() {
	s := a.screen
	s.Clear()
	w, h := s.Size()

	header := fmt.Sprintf("L%d/%d  depth %d  history %d", a.layer, a.slot, a.tree.Depth(), a.tree.HistoryLen())
	text(s, 0, 0, w, header, styleText)

	var row strings.Builder
	slots, _ := a.tree.Layer(a.layer)
	for i, g := range slots {
		switch {
		case i == a.slot:
			row.WriteRune('#')
		case g != nil:
			row.WriteRune('o')
		default:
			row.WriteRune('.')
		}
	}
	text(s, 0, 1, w, "slots "+row.String(), styleDim)

	if g := a.focused(); g != nil {
		summary := fmt.Sprintf("%d nodes  %d edges", g.Len(), g.EdgeCount())
		st := styleDim
		if g.Settled() {
			summary += "  settled"
			st = styleSettled
		}
		text(s, len(header)+2, 0, w-len(header)-2, summary, st)

		var sel *core.Edge
		if e, ok := a.selected(); ok {
			sel = &e
		}
		RenderGraph(s, g, Rect{X: 0, Y: 2, W: w, H: h - 3}, sel)
	}

	st := styleDim
	if a.failed {
		st = styleError
	}
	text(s, 0, h-1, w, a.status, st)
	s.Show()
}

// Run draws and handles events until the user quits or ctx is done. The
// caller owns Init and Fini of the screen.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	redraw := time.NewTicker(a.refresh)
	defer redraw.Stop()

	for {
		a.Draw()
		select {
		case <-ctx.Done():
			return nil
		case <-redraw.C:
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		}
	}
}
