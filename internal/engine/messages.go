package engine

import (
	"moria-kernel/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Messenger receives player-facing messages from the kernel. Calls are
// fire-and-forget: implementations must not block the turn.
type Messenger interface {
	Message(text string)
}

// MessageFunc adapts a function to Messenger.
type MessageFunc func(text string)

// Message calls f(text).
func (f MessageFunc) Message(text string) { f(text) }

// LogMessenger writes messages to the global logger.
type LogMessenger struct{}

// Message logs text at info level.
func (LogMessenger) Message(text string) {
	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
	}).Info(text)
}

func (g *Game) msgPrint(text string) {
	g.messenger.Message(text)
}
