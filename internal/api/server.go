// Package api provides the HTTP API for querying village state.
// All endpoints are GET and read-only observation.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/engine"
	"github.com/emersonsg01/villagersim/internal/persistence"
)

// Server serves the village state over HTTP.
type Server struct {
	Sim  *engine.Simulation
	Eng  *engine.Engine
	DB   *persistence.DB
	Port int
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/agents", s.handleAgents)
	mux.HandleFunc("/api/v1/agent/", s.handleAgentDetail)
	mux.HandleFunc("/api/v1/market", s.handleMarket)
	mux.HandleFunc("/api/v1/events", s.handleEvents)

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"name":       "Villagersim",
		"tick":       s.Sim.CurrentTick(),
		"sim_time":   engine.SimTime(s.Sim.CurrentTick()),
		"speed":      s.Eng.Speed,
		"running":    s.Eng.Running,
		"population": s.Sim.Stats.Population,
		"births":     s.Sim.Stats.Births,
		"deaths":     s.Sim.Stats.Deaths,
		"trades":     s.Sim.Stats.Trades,
		"avg_skill":  s.Sim.Stats.AvgSkill,
		"roles":      s.Sim.Stats.RolesByName,
		"weather":    s.Sim.Weather.At(s.Sim.CurrentTick()).Name(),
	}
	writeJSON(w, status)
}

type agentSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Generation int       `json:"generation"`
	Task       string    `json:"task"`
	Alive      bool      `json:"alive"`
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	all := s.Sim.Registry.All()
	out := make([]agentSummary, 0, len(all))
	for _, a := range all {
		out = append(out, agentSummary{
			ID:         a.ID,
			Name:       a.Name,
			Role:       a.Role.Name(),
			Generation: a.Skills.Generation,
			Task:       s.taskName(a.ID),
			Alive:      a.Alive,
		})
	}
	writeJSON(w, map[string]any{"count": len(out), "agents": out})
}

func (s *Server) handleAgentDetail(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/v1/agent/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid agent id", http.StatusBadRequest)
		return
	}

	a := s.Sim.Registry.Get(id)
	if a == nil {
		http.Error(w, "agent not found", http.StatusNotFound)
		return
	}

	skills := make(map[string]int, len(agents.AllSkills))
	for _, k := range agents.AllSkills {
		skills[k.Name()] = a.Skills.Level(k)
	}

	detail := map[string]any{
		"id":         a.ID,
		"name":       a.Name,
		"role":       a.Role.Name(),
		"generation": a.Skills.Generation,
		"born_tick":  a.BornTick,
		"alive":      a.Alive,
		"task":       s.taskName(a.ID),
		"position":   a.Nav.Block(),
		"skills":     skills,
		"inventory":  a.Inventory,
		"equipment":  a.Equipment,
	}
	if ledger := s.Sim.Ledger(a.ID); ledger != nil {
		detail["offers"] = ledger.Offers
		detail["trade_cooldown"] = ledger.Cooldown
	}
	writeJSON(w, detail)
}

func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"trades": s.Sim.Exchange.TradeCount(),
		"items":  s.Sim.Exchange.Snapshot(),
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	events := s.Sim.Events
	if len(events) > 100 {
		events = events[len(events)-100:]
	}
	writeJSON(w, map[string]any{"count": len(events), "events": events})
}

func (s *Server) taskName(id uuid.UUID) string {
	if sched := s.Sim.Scheduler(id); sched != nil {
		return sched.ActiveName()
	}
	return "idle"
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
