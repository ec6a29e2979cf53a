package game

import (
	"fmt"

	"fpsplayer/internal/config"
	"fpsplayer/internal/input"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 235)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

const (
	panelWidth  = 380
	panelMargin = 10
	rowHeight   = 24
	labelWidth  = 130
	valueWidth  = 50
)

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// tunable is one slider row of the debug panel.
type tunable struct {
	label    string
	value    *float32
	min, max float32
}

// debugTunables lists the live player settings exposed as sliders.
func debugTunables(p *config.Player) []tunable {
	return []tunable{
		{"Gravity", &p.GravityDownForce, -40, -1},
		{"Ground speed", &p.MaxSpeedOnGround, 1, 30},
		{"Sprint x", &p.SprintSpeedModifier, 1, 4},
		{"Crouch x", &p.CrouchSpeedModifier, 0.1, 1},
		{"Jump height", &p.JumpForce, 0, 15},
		{"Stand height", &p.CapsuleHeightStanding, 1, 3},
		{"Crouch height", &p.CapsuleHeightCrouching, 0.5, 2},
		{"Crouch sharpness", &p.CrouchingSharpness, 1, 30},
		{"Mouse sensitivity", &p.MouseSensitivity, 10, 400},
		{"Ground check", &p.GroundCheckDistance, 0, 0.5},
	}
}

func (g *Game) drawDebugPanel() {
	ctrl := g.World.Player.Controller
	cfg := ctrl.Config()
	rows := debugTunables(&cfg)

	x := int32(rl.GetScreenWidth()) - panelWidth - panelMargin
	y := int32(panelMargin)
	height := int32(len(rows)+3) * rowHeight

	rl.DrawRectangle(x, y, panelWidth, height, colorBgPanel)
	rl.DrawRectangleLines(x, y, panelWidth, height, colorAccent)
	rl.DrawText("Player tuning", x+8, y+6, 16, colorTextPrimary)

	for i, row := range rows {
		bounds := rl.Rectangle{
			X:      float32(x + labelWidth),
			Y:      float32(y + int32(i+1)*rowHeight + 4),
			Width:  float32(panelWidth - labelWidth - valueWidth - 8),
			Height: rowHeight - 6,
		}
		*row.value = gui.Slider(bounds, row.label, fmt.Sprintf("%.2f", *row.value), *row.value, row.min, row.max)
	}

	checkY := float32(y + int32(len(rows)+1)*rowHeight + 4)
	invert := gui.CheckBox(rl.Rectangle{X: float32(x + 8), Y: checkY, Width: 16, Height: 16}, "Invert Y", g.Config.Input.InvertY)
	if invert != g.Config.Input.InvertY {
		g.setInvertY(invert)
	}

	if cfg != ctrl.Config() {
		ctrl.SetConfig(cfg)
		g.Config.Player = cfg
	}
}

func (g *Game) setInvertY(invert bool) {
	g.Config.Input.InvertY = invert
	bindings, err := input.ParseBindings(g.Config.Input)
	if err != nil {
		return
	}
	g.poller.SetBindings(bindings)
}
