package game

import (
	"fmt"
	"log"
	"time"

	"fpsplayer/internal/config"
	"fpsplayer/internal/input"
	"fpsplayer/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// How far the HUD probes for the object under the crosshair.
const lookDistance = 50

type Game struct {
	Config    *config.Config
	World     *world.World
	Actions   *input.PlayerActions
	DebugMode bool

	poller  *input.Poller
	watcher *config.Watcher
	jumps   int

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the world from level and spawns the player. No window is needed
// until Run.
func New(cfg *config.Config, level *world.LevelFile) (*Game, error) {
	bindings, err := input.ParseBindings(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}

	g := &Game{
		Config:  cfg,
		World:   world.New(),
		Actions: input.NewPlayerActions(),
	}
	g.World.Load(level)
	if err := g.World.SpawnPlayer(cfg.Player, g.Actions); err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}
	g.poller = input.NewPoller(input.RaylibDevice{}, bindings, g.Actions)

	ctrl := g.World.Player.Controller
	ctrl.Jumped.AddListener(func() { g.jumps++ })
	ctrl.StanceChanged.AddListener(func(crouching bool) {
		if crouching {
			log.Println("Player: crouching")
		} else {
			log.Println("Player: standing")
		}
	})

	return g, nil
}

// WatchConfig reloads player tuning and bindings whenever path changes.
func (g *Game) WatchConfig(path string) error {
	w, err := config.Watch(path)
	if err != nil {
		return err
	}
	g.watcher = w
	log.Printf("Config: watching %s", path)
	return nil
}

func (g *Game) Run() {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(win.TargetFPS)
	rl.DisableCursor()
	initRayguiStyle()

	g.World.Start()
	defer g.Close()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		log.Printf("Config: close watcher: %v", err)
	}
	g.watcher = nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	// Toggle debug panel
	if rl.IsKeyPressed(rl.KeyF1) {
		g.SetDebugMode(!g.DebugMode)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.World.Respawn()
	}

	g.poller.Poll()
	g.World.Update(deltaTime)
	g.pollConfig()

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// SetDebugMode opens or closes the tuning panel. While it is open the player
// is disabled, which releases its input, and the cursor is freed.
func (g *Game) SetDebugMode(on bool) {
	g.DebugMode = on
	g.World.Player.Object.SetActive(!on)
	if on {
		rl.EnableCursor()
	} else {
		rl.DisableCursor()
	}
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg := <-g.watcher.Changes:
		g.ApplyConfig(cfg)
	case err := <-g.watcher.Errors:
		log.Printf("Config: reload failed: %v", err)
	default:
	}
}

// ApplyConfig takes the player tuning and input sections of cfg. Window
// settings only apply at startup. Bad bindings keep the previous ones.
func (g *Game) ApplyConfig(cfg *config.Config) {
	bindings, err := input.ParseBindings(cfg.Input)
	if err != nil {
		log.Printf("Config: keeping previous bindings: %v", err)
	} else {
		g.poller.SetBindings(bindings)
		g.Config.Input = cfg.Input
	}

	g.World.Player.Controller.SetConfig(cfg.Player)
	g.Config.Player = cfg.Player
	log.Println("Config: reloaded")
}

func (g *Game) Draw() {
	camera := g.World.Player.RaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.World.Draw(camera, aspect)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	// Crosshair
	cx, cy := screenW/2, screenH/2
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.RayWhite)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.RayWhite)

	rl.DrawText("WASD to move, Space to jump, Shift to sprint, Ctrl to crouch", 10, 10, 20, rl.LightGray)
	rl.DrawText("F1 tuning panel, R to respawn", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	ctrl := g.World.Player.Controller
	s := ctrl.State()
	hv := ctrl.HorizontalVelocity()
	lines := []string{
		fmt.Sprintf("Grounded: %v  Crouching: %v  Sprint: %v", ctrl.IsGrounded(), s.Crouching, s.SprintHeld),
		fmt.Sprintf("Speed: %.2f  Vertical: %.2f", rl.Vector2Length(rl.Vector2{X: hv.X, Y: hv.Z}), s.VerticalVelocity),
		fmt.Sprintf("Height: %.2f  Pitch: %.1f  Jumps: %d", g.World.Player.Body.Height(), ctrl.Pitch(), g.jumps),
		fmt.Sprintf("Boxes drawn: %d  Update: %.2f ms  Draw: %.2f ms", g.World.Drawn, g.updateMs, g.drawMs),
	}
	if hit, ok := g.World.LookTarget(lookDistance); ok {
		lines = append(lines, fmt.Sprintf("Looking at: %s (%.1f m)", hit.Object.Name, hit.Distance))
	}
	for i, line := range lines {
		rl.DrawText(line, 10, screenH-int32(len(lines)-i)*22-10, 18, rl.Green)
	}

	if g.DebugMode {
		g.drawDebugPanel()
	}
}
