package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestFrustumContainsSphere(t *testing.T) {
	camera := rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Z: -1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	f := ExtractFrustum(camera, 16.0/9.0)

	tests := []struct {
		name   string
		center rl.Vector3
		radius float32
		want   bool
	}{
		{"ahead", rl.Vector3{Z: -10}, 0.5, true},
		{"behind", rl.Vector3{Z: 10}, 0.5, false},
		{"far left", rl.Vector3{X: -100, Z: -10}, 0.5, false},
		{"far above", rl.Vector3{Y: 100, Z: -10}, 0.5, false},
		{"beyond far plane", rl.Vector3{Z: -2000}, 0.5, false},
		{"large sphere around the eye", rl.Vector3{Z: 3}, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsSphere(tt.center, tt.radius); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
