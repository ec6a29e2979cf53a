package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 2, Y: 4, Z: 6})
	if box.Min != (rl.Vector3{X: 0, Y: 0, Z: 0}) {
		t.Errorf("Expected Min (0,0,0), got %v", box.Min)
	}
	if box.Max != (rl.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Expected Max (2,4,6), got %v", box.Max)
	}
}

func TestResolve(t *testing.T) {
	floor := AABB{Min: rl.Vector3{X: -10, Y: -1, Z: -10}, Max: rl.Vector3{X: 10, Y: 0, Z: 10}}
	wall := AABB{Min: rl.Vector3{X: 2, Y: 0, Z: -5}, Max: rl.Vector3{X: 3, Y: 4, Z: 5}}

	tests := []struct {
		name string
		a    AABB
		b    AABB
		want rl.Vector3
	}{
		{
			name: "sunk into floor pushes up",
			a:    NewAABBFromCenter(rl.Vector3{Y: 0.85}, rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8}),
			b:    floor,
			want: rl.Vector3{Y: 0.05},
		},
		{
			name: "walking into wall pushes back",
			a:    NewAABBFromCenter(rl.Vector3{X: 1.7, Y: 1, Z: 0}, rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8}),
			b:    wall,
			want: rl.Vector3{X: -0.1},
		},
		{
			name: "separated",
			a:    NewAABBFromCenter(rl.Vector3{Y: 5}, rl.Vector3{X: 1, Y: 1, Z: 1}),
			b:    floor,
			want: rl.Vector3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Resolve(tt.b)
			if rl.Vector3Distance(got, tt.want) > 1e-4 {
				t.Errorf("Resolve = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestGroundGap(t *testing.T) {
	floor := AABB{Min: rl.Vector3{X: -10, Y: -1, Z: -10}, Max: rl.Vector3{X: 10, Y: 0, Z: 10}}

	hovering := NewAABBFromCenter(rl.Vector3{Y: 0.93}, rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8})
	gap, ok := hovering.GroundGap(floor)
	if !ok {
		t.Fatal("Expected floor beneath the body")
	}
	if gap < 0.029 || gap > 0.031 {
		t.Errorf("Expected gap 0.03, got %f", gap)
	}

	offEdge := NewAABBFromCenter(rl.Vector3{X: 20, Y: 1}, rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8})
	if _, ok := offEdge.GroundGap(floor); ok {
		t.Error("Body beyond the floor edge should have no ground")
	}

	below := NewAABBFromCenter(rl.Vector3{Y: -5}, rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8})
	if _, ok := below.GroundGap(floor); ok {
		t.Error("Floor above the body is not ground")
	}
}
