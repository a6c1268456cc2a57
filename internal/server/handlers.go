package server

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"CryptoBit/internal/model"
)

//go:embed web/index.html
var webFS embed.FS

var indexTmpl = template.Must(template.ParseFS(webFS, "web/index.html"))

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, struct{ Coins []string }{Coins: s.symbols}); err != nil {
		log.Printf("[ERROR] render index: %v", err)
	}
}

// handleData serves the latest snapshot. Before the first completed cycle it
// returns an empty dashboard with the neutral sentiment value.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshots.Get()
	if snap == nil {
		snap = model.EmptySnapshot()
	}
	s.writeJSON(w, http.StatusOK, snap)
}

// handleCoin serves one coin's dashboard row. Falls back to the Redis quote
// cache when the coin is not in the current snapshot.
func (s *Server) handleCoin(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(r.PathValue("symbol"))
	if symbol == "" {
		s.writeError(w, http.StatusBadRequest, "missing symbol parameter")
		return
	}

	if snap := s.snapshots.Get(); snap != nil {
		for _, row := range snap.Dashboard {
			if row.Coin == symbol {
				s.writeJSON(w, http.StatusOK, row)
				return
			}
		}
	}

	if s.cache != nil {
		if q, err := s.cache.GetQuote(r.Context(), symbol); err == nil {
			s.writeJSON(w, http.StatusOK, q)
			return
		}
	}

	s.writeError(w, http.StatusNotFound, "no data for symbol: "+symbol)
}

// marketStaleAfter is how old the snapshot may get before the market feed
// is reported stale. Several poll intervals plus a full rate-limit cooldown.
const marketStaleAfter = 2 * time.Minute

type healthResponse struct {
	Status       string `json:"status"`
	Uptime       string `json:"uptime"`
	LastCycle    string `json:"last_cycle,omitempty"`
	SnapshotAge  string `json:"snapshot_age,omitempty"`
	Market       string `json:"market"`
	Database     string `json:"database"`
	CacheBackend string `json:"cache_backend"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:       "ok",
		Uptime:       time.Since(s.startedAt).Round(time.Second).String(),
		Market:       "unknown",
		Database:     "disabled",
		CacheBackend: "memory",
	}

	if updated := s.snapshots.UpdatedAt(); !updated.IsZero() {
		resp.LastCycle = updated.Format(time.RFC3339)
		resp.SnapshotAge = time.Since(updated).Round(time.Second).String()
		resp.Market = "ok"
		if time.Since(updated) > marketStaleAfter {
			resp.Market = "stale"
		}
	} else {
		resp.Status = "warming_up"
	}

	if s.recorder != nil {
		resp.Database = "ok"
		if err := s.recorder.Ping(); err != nil {
			resp.Database = "unreachable"
		}
	}

	if s.cache != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.cache.Ping(ctx); err != nil {
			resp.CacheBackend = "redis (unreachable)"
		} else {
			resp.CacheBackend = "redis"
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
