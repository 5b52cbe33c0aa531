// Package server exposes a read-only HTTP view of an explorer session.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/explore"
)

// SlotSummary describes one live slot.
type SlotSummary struct {
	Layer   int  `json:"layer"`
	Slot    int  `json:"slot"`
	Nodes   int  `json:"nodes"`
	Edges   int  `json:"edges"`
	Settled bool `json:"settled"`
}

// TreeSummary is the body of GET /tree.
type TreeSummary struct {
	Depth   int           `json:"depth"`
	History int           `json:"history"`
	Slots   []SlotSummary `json:"slots"`
}

// NodeView is one node of GET /tree/{layer}/{slot}.
type NodeView struct {
	ID uint64  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// GraphView is the body of GET /tree/{layer}/{slot}. Edges are pairs of
// node ids.
type GraphView struct {
	Layer   int         `json:"layer"`
	Slot    int         `json:"slot"`
	Settled bool        `json:"settled"`
	Nodes   []NodeView  `json:"nodes"`
	Edges   [][2]uint64 `json:"edges"`
}

// NewHandler routes /healthz, /metrics (served from gatherer) and the tree
// views.
func NewHandler(tree *explore.Tree, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/tree", func(w http.ResponseWriter, _ *http.Request) {
		live := tree.Live()
		out := TreeSummary{
			Depth:   tree.Depth(),
			History: tree.HistoryLen(),
			Slots:   make([]SlotSummary, 0, len(live)),
		}
		for _, a := range live {
			out.Slots = append(out.Slots, SlotSummary{
				Layer:   a.Layer,
				Slot:    a.Slot,
				Nodes:   a.Graph.Len(),
				Edges:   a.Graph.EdgeCount(),
				Settled: a.Graph.Settled(),
			})
		}
		writeJSON(w, http.StatusOK, out)
	})

	r.Get("/tree/{layer}/{slot}", func(w http.ResponseWriter, req *http.Request) {
		layer, err1 := strconv.Atoi(chi.URLParam(req, "layer"))
		slot, err2 := strconv.Atoi(chi.URLParam(req, "slot"))
		if err1 != nil || err2 != nil {
			http.Error(w, "layer and slot must be integers", http.StatusBadRequest)
			return
		}
		g, err := tree.Slot(layer, slot)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, graphView(layer, slot, g))
	})

	return r
}

func graphView(layer, slot int, g *core.Graph) GraphView {
	nodes := g.Nodes()
	v := GraphView{
		Layer:   layer,
		Slot:    slot,
		Settled: g.Settled(),
		Nodes:   make([]NodeView, len(nodes)),
		Edges:   [][2]uint64{},
	}
	for i, n := range nodes {
		v.Nodes[i] = NodeView{ID: uint64(n.ID), X: n.Position.X, Y: n.Position.Y}
	}
	for _, e := range g.Edges() {
		v.Edges = append(v.Edges, [2]uint64{uint64(e.U.ID), uint64(e.V.ID)})
	}

	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
