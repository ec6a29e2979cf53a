package components

import (
	"math"

	"fpsplayer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera renders from its GameObject. On a child of the player body it acts as
// the engine.CameraRig: yaw comes from the body, pitch and eye height from the
// camera's own local transform.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) LocalPosition() rl.Vector3 {
	return c.GetGameObject().Transform.Position
}

func (c *Camera) SetLocalPosition(p rl.Vector3) {
	c.GetGameObject().Transform.Position = p
}

func (c *Camera) LocalRotation() rl.Vector3 {
	return c.GetGameObject().Transform.Rotation
}

func (c *Camera) SetLocalRotation(r rl.Vector3) {
	c.GetGameObject().Transform.Rotation = r
}

// LookDirection is the unit view vector from world yaw and pitch.
func (c *Camera) LookDirection() rl.Vector3 {
	rot := c.GetGameObject().WorldRotation()
	yaw := float64(rot.Y) * math.Pi / 180
	pitch := float64(rot.X) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Sin(yaw) * math.Cos(pitch)),
		Y: float32(-math.Sin(pitch)),
		Z: float32(-math.Cos(yaw) * math.Cos(pitch)),
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	eyePos := g.WorldPosition()
	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, c.LookDirection()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
