// Package tui is a terminal explorer for an explore.Tree built on tcell.
package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/vector"
)

// Rect is a cell rectangle on the screen.
type Rect struct {
	X, Y, W, H int
}

// Styles used by the renderer.
var (
	styleText     = tcell.StyleDefault
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleNode     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSettled  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// Glyphs.
const (
	runeNode     = 'o'
	runeEndpoint = '@'
	runeEdge     = '.'
	runeSelEdge  = '*'
)

// projection maps layout space onto a Rect.
type projection struct {
	min, scale vector.Vec
	rect       Rect
}

// fit builds a projection that fits every position into r with a one-cell
// margin. Degenerate extents are centred.
func fit(nodes []core.Node, r Rect) projection {
	p := projection{rect: r, scale: vector.New(1, 1)}
	if len(nodes) == 0 {
		return p
	}
	lo := nodes[0].Position
	hi := lo
	for _, n := range nodes[1:] {
		lo = vector.New(math.Min(lo.X, n.Position.X), math.Min(lo.Y, n.Position.Y))
		hi = vector.New(math.Max(hi.X, n.Position.X), math.Max(hi.Y, n.Position.Y))
	}
	p.min = lo
	span := hi.Sub(lo)
	if span.X > vector.Epsilon {
		p.scale.X = float64(r.W-3) / span.X
	} else {
		p.scale.X = 0
	}
	if span.Y > vector.Epsilon {
		p.scale.Y = float64(r.H-3) / span.Y
	} else {
		p.scale.Y = 0
	}

	return p
}

// cell returns the screen cell of position v.
func (p projection) cell(v vector.Vec) (int, int) {
	x := p.rect.X + 1 + int(math.Round((v.X-p.min.X)*p.scale.X))
	y := p.rect.Y + 1 + int(math.Round((v.Y-p.min.Y)*p.scale.Y))
	if p.scale.X == 0 {
		x = p.rect.X + p.rect.W/2
	}
	if p.scale.Y == 0 {
		y = p.rect.Y + p.rect.H/2
	}

	return x, y
}

// line plots a Bresenham line between two cells, endpoints excluded.
func line(s tcell.Screen, x0, y0, x1, y1 int, r rune, st tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	x, y := x0, y0
	for {
		if (x != x0 || y != y0) && (x != x1 || y != y1) {
			s.SetContent(x, y, r, nil, st)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// text writes str at (x, y), clipped to width w.
func text(s tcell.Screen, x, y, w int, str string, st tcell.Style) {
	i := 0
	for _, r := range str {
		if i >= w {
			return
		}
		s.SetContent(x+i, y, r, nil, st)
		i++
	}
}

// RenderGraph draws g into r. When sel is non-nil that edge and its
// endpoints are highlighted.
func RenderGraph(s tcell.Screen, g *core.Graph, r Rect, sel *core.Edge) {
	nodes := g.Nodes()
	p := fit(nodes, r)

	for _, e := range g.Edges() {
		x0, y0 := p.cell(e.U.Position)
		x1, y1 := p.cell(e.V.Position)
		if sel != nil && e.U.ID == sel.U.ID && e.V.ID == sel.V.ID {
			line(s, x0, y0, x1, y1, runeSelEdge, styleSelected)
		} else {
			line(s, x0, y0, x1, y1, runeEdge, styleDim)
		}
	}
	for _, n := range nodes {
		x, y := p.cell(n.Position)
		if sel != nil && (n.ID == sel.U.ID || n.ID == sel.V.ID) {
			s.SetContent(x, y, runeEndpoint, nil, styleSelected)
			continue
		}
		s.SetContent(x, y, runeNode, nil, styleNode)
	}
}
