package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"moria-kernel/internal/config"
	"moria-kernel/internal/engine"
	"moria-kernel/internal/infrastructure/storage"
	"moria-kernel/internal/server"
	"moria-kernel/internal/version"
	"moria-kernel/pkg/dungeon"
	"moria-kernel/pkg/logger"

	"github.com/sirupsen/logrus"
)

// turnInterval is how fast the game advances while the debug server runs.
const turnInterval = 100 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Bad configuration")
	}

	// Flags override the environment.
	var seed uint
	var loadName, debugAddr string
	var save, list bool
	var turns int
	flag.UintVar(&seed, "seed", uint(cfg.Seed), "Base seed (0 for the clock)")
	flag.IntVar(&cfg.Level, "level", cfg.Level, "Dungeon level to generate (0 is the town)")
	flag.StringVar(&loadName, "load", "", "Resume the named snapshot instead of generating a level")
	flag.BoolVar(&save, "save", false, "Save a snapshot before exiting")
	flag.BoolVar(&list, "list", false, "List saved snapshots and exit")
	flag.IntVar(&turns, "turns", 0, "Game turns to simulate before printing the map")
	flag.StringVar(&debugAddr, "debug", cfg.DebugAddr, "Serve the debug endpoints on this address")
	flag.Parse()
	cfg.Seed = uint32(seed)
	cfg.DebugAddr = debugAddr

	logger.Init(cfg.Logger())
	if err := cfg.Validate(); err != nil {
		logger.Log.WithError(err).Fatal("Bad configuration")
	}
	logger.Log.WithFields(version.Current().Fields()).Info("Starting cavern...")

	store, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to open snapshot store")
	}
	defer closeStore()

	if list {
		names, err := store.List()
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to list snapshots")
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	bestiary, err := dungeon.Bestiary()
	if err != nil {
		logger.Log.WithError(err).Fatal("Bad creature table")
	}
	game := engine.NewGame(cfg.Engine(), bestiary, nil)

	if loadName != "" {
		snap, err := store.Load(loadName)
		if errors.Is(err, storage.ErrNotFound) {
			logger.Log.WithField("name", loadName).Fatal("No such snapshot")
		}
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to load snapshot")
		}
		if err := snap.Apply(game); err != nil {
			logger.Log.WithError(err).Fatal("Failed to restore snapshot")
		}
		logger.Log.WithFields(logrus.Fields{"name": loadName, "level": game.Level, "turn": game.Turn}).Info("Snapshot restored")
	} else {
		game.EnterLevel(cfg.Level)
	}

	for i := 0; i < turns; i++ {
		game.Tick(engine.WakeUp)
	}

	screen := engine.NewTextScreen(engine.TerminalRows, engine.TerminalCols)
	game.PrintMap(screen)
	fmt.Println(screen.String())

	if cfg.DebugAddr != "" {
		serve(game, cfg.DebugAddr)
	}

	if save {
		name := storage.SnapshotName(game.RNG.MagicSeed(), game.Level)
		if err := store.Save(name, storage.Capture(game)); err != nil {
			logger.Log.WithError(err).Fatal("Failed to save snapshot")
		}
		logger.Log.WithField("name", name).Info("Snapshot saved")
	}

	logger.Log.Info("Done.")
}

// serve runs the game in real time behind the debug server until
// interrupted.
func serve(game *engine.Game, addr string) {
	var mu sync.Mutex
	srv := server.New(game, &mu, addr)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.WithError(err).Fatal("Server start error")
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(turnInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			mu.Lock()
			game.Tick(engine.WakeUp)
			mu.Unlock()
		case <-stop:
			logger.Log.Info("Shutting down...")
			return
		}
	}
}

// openStore picks the SQLite store when a database is configured and the
// snapshot directory otherwise.
func openStore(cfg config.Config) (storage.Store, func(), error) {
	if cfg.DB != "" {
		s, err := storage.OpenSQL(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				logger.Log.WithError(err).Warn("failed to close snapshot database")
			}
		}, nil
	}

	s, err := storage.NewFileStore(cfg.SaveDir)
	if err != nil {
		return nil, nil, err
	}
	return s, func() {}, nil
}
