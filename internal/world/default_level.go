package world

import (
	"encoding/json"
	"fmt"
)

// Layer used by level geometry that should not count as ground, such as the
// tops of railings.
const NoGroundLayer = 5

// DefaultLevel is a small test course: open floor, a staircase of climbable
// steps, a crouch tunnel, jump platforms and walls around the edge.
func DefaultLevel() *LevelFile {
	lf := &LevelFile{
		Spawn:    [3]float32{0, 0, 8},
		SpawnYaw: 0,
	}

	add := func(name, color string, pos, size [3]float32, layer int) {
		lf.Objects = append(lf.Objects, ObjectDef{
			Name:     name,
			Position: pos,
			Components: []json.RawMessage{
				mustRaw(boxRendererDef{Type: "BoxRenderer", Size: size, Color: color}),
				mustRaw(boxColliderDef{Type: "BoxCollider", Size: size, Layer: layer}),
			},
		})
	}

	add("Floor", "LightGray", [3]float32{0, -0.5, 0}, [3]float32{60, 1, 60}, 0)

	// Walls
	add("Wall_N", "Gray", [3]float32{0, 2, -30.5}, [3]float32{62, 4, 1}, 0)
	add("Wall_S", "Gray", [3]float32{0, 2, 30.5}, [3]float32{62, 4, 1}, 0)
	add("Wall_E", "Gray", [3]float32{30.5, 2, 0}, [3]float32{1, 4, 60}, 0)
	add("Wall_W", "Gray", [3]float32{-30.5, 2, 0}, [3]float32{1, 4, 60}, 0)

	// Stairs: each step is low enough for the step offset
	for i := 0; i < 8; i++ {
		h := float32(i+1) * 0.25
		add(fmt.Sprintf("Step_%d", i), "Beige", [3]float32{-10, h / 2, float32(-2 - i)}, [3]float32{3, h, 1}, 0)
	}
	add("Landing", "Beige", [3]float32{-10, 1, -11}, [3]float32{3, 2, 3}, 0)

	// Crouch tunnel: 1.2 units of headroom
	add("Tunnel_Roof", "DarkBlue", [3]float32{8, 1.7, -6}, [3]float32{3, 1, 8}, 0)
	add("Tunnel_L", "Blue", [3]float32{6.25, 0.6, -6}, [3]float32{0.5, 1.2, 8}, 0)
	add("Tunnel_R", "Blue", [3]float32{9.75, 0.6, -6}, [3]float32{0.5, 1.2, 8}, 0)

	// Jump platforms
	add("Platform_1", "Orange", [3]float32{0, 0.5, -16}, [3]float32{3, 1, 3}, 0)
	add("Platform_2", "Orange", [3]float32{0, 2, -21}, [3]float32{3, 1, 3}, 0)
	add("Platform_3", "Gold", [3]float32{5, 3.5, -24}, [3]float32{3, 1, 3}, 0)

	// Railing tops do not count as ground
	add("Railing", "Maroon", [3]float32{15, 0.6, 5}, [3]float32{0.2, 1.2, 10}, NoGroundLayer)

	return lf
}

func mustRaw(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
