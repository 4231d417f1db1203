package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// WebSocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// MapFrame is one update pushed to a watcher.
type MapFrame struct {
	Level   int    `json:"level"`
	Turn    int    `json:"turn"`
	PlayerY int    `json:"player_y"`
	PlayerX int    `json:"player_x"`
	Map     string `json:"map"`
}

// watcher streams the panel to one websocket client. It sends a frame on
// connect and again whenever the rendered panel changes.
type watcher struct {
	server *Server
	conn   *websocket.Conn
	done   chan struct{}
	log    *logrus.Entry
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := &watcher{
		server: s,
		conn:   conn,
		done:   make(chan struct{}),
		log:    s.log.WithField("remote", r.RemoteAddr),
	}
	c.log.Info("Map watcher connected")

	go c.writePump()
	go c.readPump()
}

func (s *Server) frame() MapFrame {
	text := s.renderPanel()

	s.Lock.Lock()
	defer s.Lock.Unlock()
	return MapFrame{
		Level:   s.Game.Level,
		Turn:    s.Game.Turn,
		PlayerY: s.Game.Player.Y,
		PlayerX: s.Game.Player.X,
		Map:     text,
	}
}

// readPump discards anything the client sends and notices when it leaves.
func (c *watcher) readPump() {
	defer func() {
		close(c.done)
		if err := c.conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Map watcher disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Errorf("WS Error: %v", err)
			}
			return
		}
	}
}

// writePump sends frames and pings until the client goes away.
func (c *watcher) writePump() {
	refresh := time.NewTicker(c.server.Refresh)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		refresh.Stop()
		ping.Stop()
		if err := c.conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	last := c.server.frame()
	if !c.send(last) {
		return
	}

	for {
		select {
		case <-c.done:
			return

		case <-refresh.C:
			next := c.server.frame()
			if next == last {
				continue
			}
			if !c.send(next) {
				return
			}
			last = next

		case <-ping.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}

func (c *watcher) send(f MapFrame) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.log.WithError(err).Warn("failed to set write deadline")
	}
	if err := c.conn.WriteJSON(f); err != nil {
		c.log.WithError(err).Debug("write json message failed")
		return false
	}
	return true
}
