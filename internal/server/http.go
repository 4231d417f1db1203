// Package server exposes a running game over HTTP for inspection: JSON
// dumps of the pools, the current panel as text, and a websocket that
// streams the panel as it changes. Nothing here modifies the game.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"moria-kernel/internal/engine"
	"moria-kernel/internal/version"
	"moria-kernel/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DefaultRefresh is how often the map stream checks the panel.
const DefaultRefresh = 500 * time.Millisecond

// Server serves the debug endpoints for one game.
type Server struct {
	Game *engine.Game
	// Lock guards Game. Whoever advances the simulation must hold it too.
	Lock    sync.Locker
	Addr    string
	Refresh time.Duration

	log *logrus.Entry
}

// New returns a server for game listening on addr.
func New(game *engine.Game, lock sync.Locker, addr string) *Server {
	return &Server{
		Game:    game,
		Lock:    lock,
		Addr:    addr,
		Refresh: DefaultRefresh,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "debug_server",
			"addr":      addr,
		}),
	}
}

// Handler returns the routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.HandleFunc("/ws/map", s.handleWatch)

	debugHandler := NewDebugHandler(s)
	debugHandler.RegisterRoutes(mux)

	return mux
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	s.log.Info("Debug server listening.")
	return http.ListenAndServe(s.Addr, s.Handler())
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Current())
}
