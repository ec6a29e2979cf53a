package components

import (
	"fpsplayer/internal/engine"
	"fpsplayer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is static, axis-aligned world geometry on a single layer.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
	Layer  int
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:  size,
		Layer: engine.DefaultLayer,
	}
}

func (b *BoxCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().WorldPosition(), b.Offset)
}

// GetWorldSize applies the object's scale; negative scales are folded back.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: abs(b.Size.X * s.X), Y: abs(b.Size.Y * s.Y), Z: abs(b.Size.Z * s.Z)}
}

func (b *BoxCollider) GetAABB() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
