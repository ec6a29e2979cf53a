package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Enabler is implemented by components that hook external systems such as input
// while their GameObject is active. OnEnable runs after Start and whenever the
// object is re-activated; OnDisable runs when it is deactivated or removed.
type Enabler interface {
	OnEnable()
	OnDisable()
}

// CapsuleBody is the collision volume a controller moves through the world.
// Move sweeps the body and resolves penetration; IsGrounded reflects the last Move.
type CapsuleBody interface {
	Height() float32
	SetHeight(h float32)
	Center() rl.Vector3
	SetCenter(c rl.Vector3)
	IsGrounded() bool
	Move(motion rl.Vector3) rl.Vector3
	ConfigureGroundCheck(layers LayerMask, distance float32)
}

// CameraRig is a camera transform expressed relative to its parent body.
// Rotation is Euler angles in degrees.
type CameraRig interface {
	LocalPosition() rl.Vector3
	SetLocalPosition(p rl.Vector3)
	LocalRotation() rl.Vector3
	SetLocalRotation(r rl.Vector3)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
