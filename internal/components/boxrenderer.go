package components

import (
	"fpsplayer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxRenderer draws a solid box with an outline at the object's position.
// Level geometry is axis aligned, so rotation is ignored.
type BoxRenderer struct {
	engine.BaseComponent
	Size  rl.Vector3
	Color rl.Color
	Wires bool
}

func NewBoxRenderer(size rl.Vector3, color rl.Color) *BoxRenderer {
	return &BoxRenderer{
		Size:  size,
		Color: color,
		Wires: true,
	}
}

// WorldSize is Size with the object's scale applied.
func (b *BoxRenderer) WorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: abs(b.Size.X * s.X), Y: abs(b.Size.Y * s.Y), Z: abs(b.Size.Z * s.Z)}
}

// BoundingRadius is the radius of the sphere enclosing the box.
func (b *BoxRenderer) BoundingRadius() float32 {
	return rl.Vector3Length(b.WorldSize()) / 2
}

func (b *BoxRenderer) Draw() {
	g := b.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	size := b.WorldSize()
	rl.DrawCubeV(pos, size, b.Color)
	if b.Wires {
		rl.DrawCubeWiresV(pos, size, rl.ColorBrightness(b.Color, -0.4))
	}
}
