// Command pathserver exposes the voxpath finders over a small JSON API:
//
//	POST /v1/paths — run one search on the posted matrix
//	GET  /health   — liveness probe
//
// The server is a thin synchronous wrapper: each request builds its own
// grid and runs a single search to completion, so no state is shared
// between requests.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/voxpath/voxpath/finder"
	"github.com/voxpath/voxpath/grid"
)

// pathRequest is the body of POST /v1/paths.
type pathRequest struct {
	Matrix           [][][]float64 `json:"matrix"`
	Start            [3]int        `json:"start"`
	End              [3]int        `json:"end"`
	Algorithm        string        `json:"algorithm"`
	DiagonalMovement string        `json:"diagonalMovement,omitempty"`
	Weight           float64       `json:"weight,omitempty"`
	MaxRuns          int           `json:"maxRuns,omitempty"`
	TimeLimitMs      int           `json:"timeLimitMs,omitempty"`
}

// pathResponse is the body of a successful search, found or not.
type pathResponse struct {
	Found      bool     `json:"found"`
	Path       [][3]int `json:"path,omitempty"`
	Cost       float64  `json:"cost"`
	Operations int      `json:"operations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var diagonalPolicies = map[string]grid.DiagonalMovement{
	"":                        grid.DiagonalNever,
	"never":                   grid.DiagonalNever,
	"only_when_no_obstacle":   grid.DiagonalOnlyWhenNoObstacle,
	"if_at_most_one_obstacle": grid.DiagonalIfAtMostOneObstacle,
	"always":                  grid.DiagonalAlways,
}

// newFinder maps the algorithm name of a request onto a constructor.
func newFinder(name string, opts []finder.Option) (interface {
	FindPath(start, end *grid.Node, m finder.Map) (finder.Path, int, error)
}, error) {
	switch name {
	case "astar", "":
		return finder.NewAStar(opts...), nil
	case "dijkstra":
		return finder.NewDijkstra(opts...), nil
	case "best_first":
		return finder.NewBestFirst(opts...), nil
	case "bi_astar":
		return finder.NewBiAStar(opts...), nil
	case "breadth_first":
		return finder.NewBreadthFirst(opts...), nil
	case "ida_star":
		return finder.NewIDAStar(opts...), nil
	case "msp":
		return finder.NewMinimumSpanningTree(opts...), nil
	case "theta_star":
		return finder.NewThetaStar(opts...), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}

func handlePaths(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	dm, ok := diagonalPolicies[req.DiagonalMovement]
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown diagonalMovement %q", req.DiagonalMovement))
		return
	}

	opts := []finder.Option{finder.WithDiagonalMovement(dm)}
	if req.Weight > 0 {
		opts = append(opts, finder.WithWeight(req.Weight))
	}
	if req.MaxRuns > 0 {
		opts = append(opts, finder.WithMaxRuns(req.MaxRuns))
	}
	if req.TimeLimitMs > 0 {
		opts = append(opts, finder.WithTimeLimit(time.Duration(req.TimeLimitMs)*time.Millisecond))
	}

	f, err := newFinder(req.Algorithm, opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g, err := grid.NewGrid(req.Matrix)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	start, err := g.Node(req.Start[0], req.Start[1], req.Start[2])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	end, err := g.Node(req.End[0], req.End[1], req.End[2])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	path, runs, err := f.FindPath(start, end, g)
	switch {
	case errors.Is(err, finder.ErrRunsExceeded) || errors.Is(err, finder.ErrTimeExceeded):
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := pathResponse{Found: len(path) > 0, Operations: runs}
	if resp.Found {
		resp.Path = path.Coordinates()
		resp.Cost = path.Cost(g, true)
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func newRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/v1/paths", handlePaths).Methods(http.MethodPost)
	router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)

	return router
}

func main() {
	addr := flag.String("addr", ":8087", "listen address")
	flag.Parse()

	log.Printf("pathserver listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, newRouter()))
}
