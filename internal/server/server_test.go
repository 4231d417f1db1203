package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"moria-kernel/internal/engine"
	"moria-kernel/internal/version"
	"moria-kernel/pkg/dungeon"
	"moria-kernel/pkg/logger"

	"github.com/gorilla/websocket"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Config{Level: "error"})
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	b, err := dungeon.Bestiary()
	if err != nil {
		t.Fatalf("bestiary: %v", err)
	}
	cfg := engine.NewConfig()
	cfg.Seed = 7
	g := engine.NewGame(cfg, b, nil)
	g.EnterLevel(2)

	s := New(g, &sync.Mutex{}, "")
	s.Refresh = 10 * time.Millisecond
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return s, srv
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	_, srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/health")
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("health = %d %q", resp.StatusCode, body)
	}
}

func TestVersion(t *testing.T) {
	_, srv := newTestServer(t)

	_, body := get(t, srv.URL+"/version")
	var b version.Build
	if err := json.Unmarshal(body, &b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.SnapshotFormat != version.SnapshotFormat || b.Generator != version.Generator {
		t.Errorf("version = %+v", b)
	}
}

func TestSummary(t *testing.T) {
	s, srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/debug/summary")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q", got)
	}

	var summary Summary
	if err := json.Unmarshal(body, &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if summary.Level != 2 {
		t.Errorf("level = %d, want 2", summary.Level)
	}
	if summary.Monsters != s.Game.Monsters.Len() || summary.Objects != s.Game.Treasures.Len() {
		t.Errorf("counts = %d/%d, want %d/%d",
			summary.Monsters, summary.Objects, s.Game.Monsters.Len(), s.Game.Treasures.Len())
	}
	if summary.Player.Y != s.Game.Player.Y || summary.Player.X != s.Game.Player.X {
		t.Errorf("player = (%d,%d)", summary.Player.Y, summary.Player.X)
	}
	if summary.Seed != 7 {
		t.Errorf("seed = %d, want 7", summary.Seed)
	}
}

func TestMonsters(t *testing.T) {
	s, srv := newTestServer(t)

	_, body := get(t, srv.URL+"/debug/monsters")
	var views []MonsterView
	if err := json.Unmarshal(body, &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != s.Game.Monsters.Len() {
		t.Fatalf("monsters = %d, want %d", len(views), s.Game.Monsters.Len())
	}
	for _, v := range views {
		if v.Species == "" {
			t.Errorf("monster %d has no species name", v.Index)
		}
		if s.Game.Cave.At(int(v.Y), int(v.X)).Cptr != uint8(v.Index) {
			t.Errorf("monster %d not found at (%d,%d)", v.Index, v.Y, v.X)
		}
	}
}

func TestObjects(t *testing.T) {
	s, srv := newTestServer(t)

	_, body := get(t, srv.URL+"/debug/objects")
	var views []ObjectView
	if err := json.Unmarshal(body, &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != s.Game.Treasures.Len() {
		t.Fatalf("objects = %d, want %d", len(views), s.Game.Treasures.Len())
	}
	for _, v := range views {
		if v.Kind != s.Game.Treasures.At(v.Index).Kind {
			t.Errorf("object %d kind mismatch", v.Index)
		}
	}
}

func TestMap(t *testing.T) {
	_, srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/debug/map")
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(string(body), "@") {
		t.Errorf("map has no player:\n%s", body)
	}
}

func TestMapDoesNotClearRedraw(t *testing.T) {
	s, srv := newTestServer(t)
	s.Game.NeedsRedraw = true

	get(t, srv.URL+"/debug/map")
	if !s.Game.NeedsRedraw {
		t.Error("debug map cleared the game's redraw flag")
	}
}

func TestMapLeavesGeneratorAlone(t *testing.T) {
	s, srv := newTestServer(t)
	s.Game.Player.Hallucinating = true
	before := s.Game.RNG.Snapshot()

	for i := 0; i < 3; i++ {
		get(t, srv.URL+"/debug/map")
	}
	if after := s.Game.RNG.Snapshot(); after != before {
		t.Errorf("watching the map moved the generator: %+v -> %+v", before, after)
	}
}

func TestLOS(t *testing.T) {
	s, srv := newTestServer(t)
	y, x := s.Game.Player.Y, s.Game.Player.X

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"self", "?fy=" + strconv.Itoa(y) + "&fx=" + strconv.Itoa(x) + "&ty=" + strconv.Itoa(y) + "&tx=" + strconv.Itoa(x), http.StatusOK},
		{"missing param", "?fy=1&fx=1&ty=1", http.StatusBadRequest},
		{"not a number", "?fy=a&fx=1&ty=1&tx=1", http.StatusBadRequest},
		{"outside", "?fy=-1&fx=1&ty=1&tx=1", http.StatusBadRequest},
		{"past the edge", "?fy=1&fx=1&ty=1&tx=" + strconv.Itoa(s.Game.Cave.Width), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv.URL+"/debug/los"+tt.query)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}
			if tt.status != http.StatusOK {
				return
			}
			var result struct {
				Visible  bool `json:"visible"`
				Distance int  `json:"distance"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !result.Visible || result.Distance != 0 {
				t.Errorf("result = %+v, want visible at distance 0", result)
			}
		})
	}
}

func TestWatchMap(t *testing.T) {
	s, srv := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/map"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var first MapFrame
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("first frame: %v", err)
	}
	if first.Level != 2 || !strings.Contains(first.Map, "@") {
		t.Errorf("first frame = level %d, map:\n%s", first.Level, first.Map)
	}

	s.Lock.Lock()
	s.Game.EnterLevel(3)
	s.Lock.Unlock()

	var next MapFrame
	if err := conn.ReadJSON(&next); err != nil {
		t.Fatalf("second frame: %v", err)
	}
	if next.Level != 3 {
		t.Errorf("second frame level = %d, want 3", next.Level)
	}
}
