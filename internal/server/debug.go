package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"moria-kernel/internal/domain"
	"moria-kernel/internal/engine"
)

// DebugHandler serves snapshots of the game state.
type DebugHandler struct {
	server *Server
}

func NewDebugHandler(s *Server) *DebugHandler {
	return &DebugHandler{server: s}
}

// RegisterRoutes registers the debug endpoints.
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/summary", h.handleSummary)
	mux.HandleFunc("/debug/monsters", h.handleMonsters)
	mux.HandleFunc("/debug/objects", h.handleObjects)
	mux.HandleFunc("/debug/map", h.handleMap)
	mux.HandleFunc("/debug/los", h.handleLOS)
}

// Summary is the /debug/summary payload.
type Summary struct {
	Level       int           `json:"level"`
	Turn        int           `json:"turn"`
	Seed        uint32        `json:"seed"`
	Height      int           `json:"height"`
	Width       int           `json:"width"`
	Player      engine.Player `json:"player"`
	Panel       domain.Panel  `json:"panel"`
	Monsters    int           `json:"monsters"`
	Objects     int           `json:"objects"`
	TotalWinner bool          `json:"total_winner"`
}

// MonsterView is one entry of /debug/monsters.
type MonsterView struct {
	Index   int    `json:"index"`
	Species string `json:"species"`
	Glyph   string `json:"glyph"`
	domain.Monster
}

// ObjectView is one entry of /debug/objects.
type ObjectView struct {
	Index int `json:"index"`
	Y     int `json:"y"`
	X     int `json:"x"`
	domain.Treasure
}

// /debug/summary - level, pools and viewport at a glance
func (h *DebugHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	s := h.server
	s.Lock.Lock()
	g := s.Game
	summary := Summary{
		Level:       g.Level,
		Turn:        g.Turn,
		Seed:        g.RNG.MagicSeed(),
		Height:      g.Cave.Height,
		Width:       g.Cave.Width,
		Player:      g.Player,
		Panel:       *g.Panel,
		Monsters:    g.Monsters.Len(),
		Objects:     g.Treasures.Len(),
		TotalWinner: g.TotalWinner,
	}
	s.Lock.Unlock()

	writeJSON(w, summary)
}

// /debug/monsters - every monster record in slot order
func (h *DebugHandler) handleMonsters(w http.ResponseWriter, r *http.Request) {
	s := h.server
	s.Lock.Lock()
	g := s.Game
	views := make([]MonsterView, 0, g.Monsters.Len())
	for i := g.Monsters.Min(); i < g.Monsters.Next(); i++ {
		m := g.Monsters.At(i)
		species := g.Bestiary.Get(int(m.Species))
		views = append(views, MonsterView{
			Index:   i,
			Species: species.Name,
			Glyph:   string(species.Glyph),
			Monster: *m,
		})
	}
	s.Lock.Unlock()

	writeJSON(w, views)
}

// /debug/objects - every object on the floor, with its position
func (h *DebugHandler) handleObjects(w http.ResponseWriter, r *http.Request) {
	s := h.server
	s.Lock.Lock()
	g := s.Game
	views := make([]ObjectView, 0, g.Treasures.Len())
	for y := 0; y < g.Cave.Height; y++ {
		for x := 0; x < g.Cave.Width; x++ {
			if i := int(g.Cave.At(y, x).Tptr); i != 0 {
				views = append(views, ObjectView{Index: i, Y: y, X: x, Treasure: *g.Treasures.At(i)})
			}
		}
	}
	s.Lock.Unlock()

	writeJSON(w, views)
}

// /debug/map - the current panel as the player would see it
func (h *DebugHandler) handleMap(w http.ResponseWriter, r *http.Request) {
	text := h.server.renderPanel()

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text + "\n"))
}

// /debug/los?fy=1&fx=1&ty=5&tx=9 - line of sight and distance between two cells
func (h *DebugHandler) handleLOS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var coords [4]int
	for i, key := range []string{"fy", "fx", "ty", "tx"} {
		v, err := strconv.Atoi(q.Get(key))
		if err != nil {
			http.Error(w, "bad or missing "+key, http.StatusBadRequest)
			return
		}
		coords[i] = v
	}
	fy, fx, ty, tx := coords[0], coords[1], coords[2], coords[3]

	s := h.server
	s.Lock.Lock()
	g := s.Game
	inside := func(y, x int) bool { return y >= 0 && y < g.Cave.Height && x >= 0 && x < g.Cave.Width }
	if !inside(fy, fx) || !inside(ty, tx) {
		s.Lock.Unlock()
		http.Error(w, "point outside the cave", http.StatusBadRequest)
		return
	}
	result := struct {
		Visible  bool `json:"visible"`
		Distance int  `json:"distance"`
	}{
		Visible:  g.LOS(fy, fx, ty, tx),
		Distance: domain.Distance(fy, fx, ty, tx),
	}
	s.Lock.Unlock()

	writeJSON(w, result)
}

// renderPanel draws the current panel into a text screen.
func (s *Server) renderPanel() string {
	screen := engine.NewTextScreen(engine.TerminalRows, engine.TerminalCols)
	s.Lock.Lock()
	s.Game.DrawPanel(screen)
	s.Lock.Unlock()
	return screen.String()
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
