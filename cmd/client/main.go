package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"fortress-client/handlers"
	"fortress-client/input"
	"fortress-client/models"
	"fortress-client/network"
	"fortress-client/persistence"
	"fortress-client/render"
	"fortress-client/state"
	"fortress-client/view"
)

const frameInterval = 33 * time.Millisecond // ~30 fps

func main() {
	serverFlag := flag.String("server", "", "websocket server URL (overrides profile and FORTRESS_SERVER)")
	flag.Parse()

	configDir := os.Getenv("FORTRESS_CONFIG_DIR")
	if configDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		configDir = filepath.Join(base, "fortress-client")
	}

	// The terminal belongs to the game; logs go to a file instead.
	if err := os.MkdirAll(configDir, 0755); err == nil {
		if f, err := os.OpenFile(filepath.Join(configDir, "client.log"),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			log.SetOutput(f)
			defer f.Close()
		}
	}

	store, err := persistence.NewJSONStore(filepath.Join(configDir, "profile.json"))
	if err != nil {
		log.Fatalf("Failed to initialize profile store: %v", err)
	}
	defer store.Close()

	profile, err := store.LoadProfile()
	if err != nil {
		log.Printf("Failed to load profile, using defaults: %v", err)
		profile = models.DefaultProfile()
	}
	if url := os.Getenv("FORTRESS_SERVER"); url != "" {
		profile.ServerURL = url
	}
	if *serverFlag != "" {
		profile.ServerURL = *serverFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	mirror := state.NewMirror()
	vp := view.New()
	cols, rows := screen.Size()
	vp.Resize(cols, rows-1) // bottom row is the status line

	renderer := render.NewRenderer(screen)
	handler := handlers.NewServerHandler(mirror, vp)

	client := network.NewClient(profile.ServerURL)
	go client.Run()
	defer client.Close()

	controller := input.NewController(vp, mirror, client, profile.ScrollStep, profile.Designation)

	// All mirror and viewport mutation happens on this goroutine; the
	// network and terminal goroutines only feed channels.
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	log.Printf("Client starting against %s", profile.ServerURL)

	for {
		select {
		case data, ok := <-client.Messages():
			if !ok {
				return
			}
			handler.HandleFrame(data)

		case ev := <-events:
			if resize, ok := ev.(*tcell.EventResize); ok {
				cols, rows := resize.Size()
				vp.Resize(cols, rows-1)
				screen.Sync()
				continue
			}
			if controller.HandleEvent(ev) {
				if err := store.SaveProfile(profile); err != nil {
					log.Printf("Failed to save profile: %v", err)
				}
				return
			}

		case <-ticker.C:
			drawFrame(screen, renderer, mirror, vp, controller, client)
		}
	}
}

// drawFrame renders one frame plus the status line and flips the screen.
func drawFrame(screen tcell.Screen, renderer *render.Renderer, mirror *state.Mirror,
	vp *view.Viewport, controller *input.Controller, client *network.Client) {

	var sel *render.Selection
	if start, end, active := controller.Gesture(); active {
		sel = &render.Selection{
			X1: min(start.X, end.X),
			Y1: min(start.Y, end.Y),
			X2: max(start.X, end.X),
			Y2: max(start.Y, end.Y),
			Z:  start.Z,
		}
	}
	renderer.Draw(mirror, vp, sel)

	cursor := ""
	if x, y, ok := vp.ScreenToWorld(controller.Cursor()); ok {
		if tile, found := mirror.TileAt(x, y); found {
			cursor = render.DescribeTile(x, y, tile)
		}
	}
	cols, rows := screen.Size()
	status := render.StatusLine(mirror.Meta(), mirror.CreatureCount(), mirror.ItemCount(),
		client.Connected(), cursor)
	renderer.DrawStatus(rows-1, cols, status)

	screen.Show()
}
