package input

import (
	"fmt"

	"fpsplayer/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyByName maps key names used in config files to raylib key codes.
var KeyByName = map[string]int32{
	"Space":        rl.KeySpace,
	"Enter":        rl.KeyEnter,
	"Tab":          rl.KeyTab,
	"LeftShift":    rl.KeyLeftShift,
	"RightShift":   rl.KeyRightShift,
	"LeftControl":  rl.KeyLeftControl,
	"RightControl": rl.KeyRightControl,
	"LeftAlt":      rl.KeyLeftAlt,
	"RightAlt":     rl.KeyRightAlt,
	"Up":           rl.KeyUp,
	"Down":         rl.KeyDown,
	"Left":         rl.KeyLeft,
	"Right":        rl.KeyRight,
}

func init() {
	// raylib letter key codes are their ASCII upper-case values
	for c := 'A'; c <= 'Z'; c++ {
		KeyByName[string(c)] = int32(c)
	}
}

type Bindings struct {
	Forward int32
	Back    int32
	Left    int32
	Right   int32
	Jump    int32
	Sprint  int32
	Crouch  int32
	InvertY bool
}

// ParseBindings resolves key names. Unknown names are an error so a typo in
// the config file is reported at startup instead of silently unbinding a key.
func ParseBindings(cfg config.InputConfig) (Bindings, error) {
	b := Bindings{InvertY: cfg.InvertY}
	fields := []struct {
		action string
		name   string
		dst    *int32
	}{
		{"forward", cfg.Forward, &b.Forward},
		{"back", cfg.Back, &b.Back},
		{"left", cfg.Left, &b.Left},
		{"right", cfg.Right, &b.Right},
		{"jump", cfg.Jump, &b.Jump},
		{"sprint", cfg.Sprint, &b.Sprint},
		{"crouch", cfg.Crouch, &b.Crouch},
	}
	for _, f := range fields {
		key, ok := KeyByName[f.name]
		if !ok {
			return Bindings{}, fmt.Errorf("bind %s: unknown key %q", f.action, f.name)
		}
		*f.dst = key
	}
	return b, nil
}
