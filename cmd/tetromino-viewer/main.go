package main

import (
	"flag"
	"math/rand/v2"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetrimino/internal/logger"
	"github.com/plus3/tetrimino/internal/viewer"
	"github.com/plus3/tetrimino/tetromino"
	"go.uber.org/zap"
)

const title = "Tetromino Viewer"

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	inspector := flag.Bool("inspector", false, "Show the Dear ImGui inspector window.")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	flag.Parse()

	log := logger.Must(*debug)
	defer log.Sync()

	cfg, err := viewer.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}
	if *inspector {
		cfg.Inspector = true
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	next, err := tetromino.NewRandomizer(cfg.Randomizer, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		log.Fatal("failed to create randomizer", zap.Error(err))
	}

	spawn := tetromino.Position{Row: int8(cfg.Spawn.Row), Col: int8(cfg.Spawn.Col)}
	game := &Game{
		cfg:     cfg,
		session: viewer.NewSession(spawn, next),
		log:     log,
	}

	width, height := cfg.WindowSize()
	if cfg.Inspector {
		game.imgui = ebitenbackend.NewEbitenBackend()
		game.imgui.CreateWindow(title, width, height)
		imgui.CurrentIO().SetIniFilename("")
		game.inspector = &Inspector{game: game}
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(title)
	}

	log.Info("starting viewer",
		zap.Int("width", cfg.Field.Width),
		zap.Int("height", cfg.Field.Height),
		zap.String("randomizer", cfg.Randomizer),
		zap.Uint64("seed", seed),
		zap.Bool("inspector", cfg.Inspector),
	)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("viewer stopped", zap.Error(err))
	}
}
