package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"activemessage/pkg/engine/terminal"
	"activemessage/pkg/engine/world"
	"activemessage/pkg/game/activemessage"
	"activemessage/pkg/game/config"
	"activemessage/pkg/game/devtools"
	"activemessage/pkg/game/gameplay"
	"activemessage/pkg/game/i18n"
	"activemessage/pkg/game/mapdata"
	"activemessage/pkg/game/renderer"
	ebitenrenderer "activemessage/pkg/game/renderer/ebiten"
	"activemessage/pkg/game/renderer/tui"
	"activemessage/pkg/game/state"
)

func main() {
	mapPath := flag.String("map", "maps/courtyard.yaml", "map file to load")
	configPath := flag.String("config", "settings.yaml", "settings file")
	rendererName := flag.String("renderer", "", "renderer to use: ebiten or tui (overrides settings)")
	lang := flag.String("lang", "", "locale for displayed text, e.g. en_GB (overrides settings)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}
	if *rendererName != "" {
		cfg.Renderer = *rendererName
	}
	if *lang != "" {
		cfg.Locale = *lang
	}

	i18n.Configure(cfg.LocaleDir, cfg.Locale)

	g, err := loadGame(*mapPath)
	if err != nil {
		log.Fatalf("Error loading map: %v", err)
	}

	r, err := newRenderer(cfg, g)
	if err != nil {
		log.Fatalf("Error starting renderer: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	messages := activemessage.NewController(r, cfg.Messages,
		activemessage.WithPicker(rng),
		activemessage.WithTranslator(i18n.T),
	)
	loop := gameplay.NewLoop(g, gameplay.MessageHooks(messages))
	loop.OnDebugDump = func(g *state.Game) error {
		path, err := devtools.DumpToFile(g, messages)
		if err != nil {
			return err
		}
		g.AddLog("Map dumped to " + path)
		return nil
	}

	err = r.Run(loop.Step)
	switch {
	case err == nil, errors.Is(err, gameplay.ErrQuit):
		fmt.Println(i18n.T("GOODBYE"))
	default:
		log.Fatalf("Error: %v", err)
	}
}

// loadGame reads a map file and places the player on it
func loadGame(path string) (*state.Game, error) {
	m, err := mapdata.Load(path)
	if err != nil {
		return nil, err
	}
	grid, events, err := m.Build()
	if err != nil {
		return nil, fmt.Errorf("build map %s: %w", path, err)
	}

	g := state.NewGame(m.Name, grid, events)
	g.PlayerRow, g.PlayerCol = m.Player.Row, m.Player.Col
	g.Facing = m.Facing()
	if c := g.PlayerCell(); c != nil {
		c.Visited = true
		world.Reveal(grid, c, world.SightRadius)
	}
	log.Printf("Loaded map %q (%dx%d, %d events)", m.Name, grid.Rows(), grid.Cols(), len(events))
	return g, nil
}

// newRenderer creates the configured back-end
func newRenderer(cfg *config.Config, g *state.Game) (renderer.Renderer, error) {
	switch cfg.Renderer {
	case "tui":
		if !terminal.Interactive() {
			return nil, errors.New("the tui renderer needs an interactive terminal")
		}
		// Log lines would tear the frame, so they go to a file
		f, err := os.Create("activemessage.log")
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		log.SetOutput(f)
		return tui.New(g, cfg.FrameRate), nil
	case "ebiten":
		return ebitenrenderer.New(g, ebitenrenderer.Options{
			Title:      g.MapName,
			TileSize:   cfg.TileSize,
			ScreenCols: cfg.ScreenCols,
			ScreenRows: cfg.ScreenRows,
		})
	default:
		return nil, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}
}
