// Package api serves a generated world over HTTP. All endpoints are GET
// and read-only; the world is immutable, so no locking is needed for
// concurrent requests.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/talgya/hexforge/internal/world"
)

// Server serves world queries over HTTP.
type Server struct {
	World *world.World
	Port  int
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/hex", s.handleHex)
	mux.HandleFunc("/api/v1/map", s.handleMap)

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleStatus reports world identity and summary counts.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"seed":   s.World.Seed(),
		"width":  s.World.Width(),
		"height": s.World.Height(),
		"hexes":  s.World.HexCount(),
		"rivers": s.World.RiverCount(),
		"lakes":  s.World.LakeCount(),
	})
}

// handleHex returns the full record for one hex: /api/v1/hex?x=3&y=7.
func (s *Server) handleHex(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if errX != nil || errY != nil {
		writeError(w, http.StatusBadRequest, "x and y must be integers")
		return
	}

	data, err := s.World.HexData(world.Coord{X: x, Y: y})
	if err != nil {
		if errors.Is(err, world.ErrOutOfBounds) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// handleMap returns a compact row-major layer of the whole grid:
// /api/v1/map?layer=terrain|elevation|zone.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	layer := r.URL.Query().Get("layer")
	if layer == "" {
		layer = "terrain"
	}

	rows := make([][]any, s.World.Height())
	for y := 0; y < s.World.Height(); y++ {
		row := make([]any, s.World.Width())
		for x := 0; x < s.World.Width(); x++ {
			data, err := s.World.HexData(world.Coord{X: x, Y: y})
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			switch layer {
			case "terrain":
				row[x] = data.Terrain
			case "elevation":
				row[x] = data.Elevation
			case "zone":
				row[x] = data.Climate.Type
			default:
				writeError(w, http.StatusBadRequest, "unknown layer: "+layer)
				return
			}
		}
		rows[y] = row
	}

	writeJSON(w, http.StatusOK, map[string]any{"layer": layer, "rows": rows})
}
