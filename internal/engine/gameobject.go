package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform rotation is Euler angles in degrees. Y is yaw measured clockwise
// when seen from above, so a positive yaw turns the object to its right.
// X is pitch, positive looks down.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// Forward returns the horizontal facing direction. Yaw 0 faces -Z.
func (t Transform) Forward() rl.Vector3 {
	yaw := float64(t.Rotation.Y) * math.Pi / 180
	return rl.Vector3{X: float32(math.Sin(yaw)), Y: 0, Z: float32(-math.Cos(yaw))}
}

// Right returns the horizontal right-hand direction. Yaw 0 has right = +X.
func (t Transform) Right() rl.Vector3 {
	yaw := float64(t.Rotation.Y) * math.Pi / 180
	return rl.Vector3{X: float32(math.Cos(yaw)), Y: 0, Z: float32(math.Sin(yaw))}
}

// Up is always world up; bodies never roll.
func (t Transform) Up() rl.Vector3 {
	return rl.Vector3{X: 0, Y: 1, Z: 0}
}

// RotateYaw turns the transform around world up and keeps yaw in [0, 360).
func (t *Transform) RotateYaw(degrees float32) {
	yaw := math.Mod(float64(t.Rotation.Y+degrees), 360)
	if yaw < 0 {
		yaw += 360
	}
	t.Rotation.Y = float32(yaw)
}

type GameObject struct {
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// Start runs component Start once, then enables the object if it is active.
func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
	if g.Active {
		g.notifyEnabled(true)
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

// SetActive switches the object on or off and fires OnEnable/OnDisable on
// components that implement Enabler. Before Start only the flag changes.
func (g *GameObject) SetActive(active bool) {
	if g.Active == active {
		return
	}
	g.Active = active
	if !g.started {
		return
	}
	g.notifyEnabled(active)
}

func (g *GameObject) notifyEnabled(enabled bool) {
	for _, c := range g.components {
		e, ok := c.(Enabler)
		if !ok {
			continue
		}
		if enabled {
			e.OnEnable()
		} else {
			e.OnDisable()
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// WorldPosition resolves the local position through the parent chain.
// Parents contribute yaw only.
func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parent := g.Parent
	parentPos := parent.WorldPosition()
	scale := parent.WorldScale()
	basis := Transform{Rotation: parent.WorldRotation()}

	local := g.Transform.Position
	offset := rl.Vector3Scale(basis.Right(), local.X*scale.X)
	offset = rl.Vector3Add(offset, rl.Vector3Scale(basis.Up(), local.Y*scale.Y))
	offset = rl.Vector3Add(offset, rl.Vector3Scale(basis.Forward(), -local.Z*scale.Z))
	return rl.Vector3Add(parentPos, offset)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
