package world

import (
	"encoding/json"
	"fmt"
	"os"

	"fpsplayer/internal/components"
	"fpsplayer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type LevelFile struct {
	Spawn    [3]float32  `json:"spawn"`
	SpawnYaw float32     `json:"spawnYaw,omitempty"`
	Objects  []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Position   [3]float32        `json:"position"`
	Scale      [3]float32        `json:"scale,omitempty"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type boxRendererDef struct {
	Type  string     `json:"type"`
	Size  [3]float32 `json:"size"`
	Color string     `json:"color"`
	Wires *bool      `json:"wires,omitempty"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
	Layer  int        `json:"layer,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
	"DarkBlue":  rl.DarkBlue,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Loading ---

func LoadLevel(path string) (*LevelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return ParseLevel(data)
}

func ParseLevel(data []byte) (*LevelFile, error) {
	var lf LevelFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	for i, obj := range lf.Objects {
		for _, raw := range obj.Components {
			var header componentHeader
			if err := json.Unmarshal(raw, &header); err != nil {
				return nil, fmt.Errorf("parse level: object %d (%s): %w", i, obj.Name, err)
			}
		}
	}
	return &lf, nil
}

// Build turns the object definitions into GameObjects. Unknown component types
// are skipped.
func (lf *LevelFile) Build() []*engine.GameObject {
	objects := make([]*engine.GameObject, 0, len(lf.Objects))
	for _, objDef := range lf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Transform.Position = vec3(objDef.Position)

		// Default scale to 1 if zero
		if objDef.Scale != [3]float32{} {
			g.Transform.Scale = vec3(objDef.Scale)
		}

		for _, raw := range objDef.Components {
			var header componentHeader
			if err := json.Unmarshal(raw, &header); err != nil {
				continue
			}

			switch header.Type {
			case "BoxRenderer":
				loadBoxRenderer(g, raw)
			case "BoxCollider":
				loadBoxCollider(g, raw)
			}
		}

		objects = append(objects, g)
	}
	return objects
}

func loadBoxRenderer(g *engine.GameObject, raw json.RawMessage) {
	var def boxRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	r := components.NewBoxRenderer(vec3(def.Size), lookupColor(def.Color))
	if def.Wires != nil {
		r.Wires = *def.Wires
	}
	g.AddComponent(r)
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	col := components.NewBoxCollider(vec3(def.Size))
	col.Offset = vec3(def.Offset)
	col.Layer = def.Layer
	g.AddComponent(col)
}
