package components

import (
	"errors"
	"log"

	"fpsplayer/internal/config"
	"fpsplayer/internal/engine"
	"fpsplayer/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNoBody   = errors.New("player controller: capsule body is required")
	ErrNoCamera = errors.New("player controller: camera rig is required")
)

// PlayerMotionState is everything the controller carries between frames.
// Input fields are written by the setters and only read during Update.
type PlayerMotionState struct {
	VerticalVelocity float32
	MoveAxis         rl.Vector2
	LookAxis         rl.Vector2
	JumpHeld         bool
	SprintHeld       bool
	Crouching        bool

	// Camera local Y at construction; eye height scales from it.
	InitialCameraYOffset float32
}

// PlayerCharacterController is a first-person walker: ground movement with
// sprint and crouch, jumping, gravity and mouse look. Each frame runs
// locomotion, crouch blend, jump, gravity and look in that order.
type PlayerCharacterController struct {
	engine.BaseComponent

	// Jumped fires on the frame a jump impulse is applied.
	Jumped engine.Event
	// StanceChanged fires with the new crouch state after a toggle.
	StanceChanged engine.EventWithArg[bool]

	cfg     config.Player
	body    engine.CapsuleBody
	camera  engine.CameraRig
	actions *input.PlayerActions
	unbind  []func()
	state   PlayerMotionState
}

// NewPlayerCharacterController wires the controller to its collision body and
// camera. The camera must already be attached to its GameObject, since its
// current local height becomes the standing eye height. actions may be nil
// when input is fed through the setters directly.
func NewPlayerCharacterController(cfg config.Player, body engine.CapsuleBody, camera engine.CameraRig, actions *input.PlayerActions) (*PlayerCharacterController, error) {
	if body == nil {
		return nil, ErrNoBody
	}
	if camera == nil {
		return nil, ErrNoCamera
	}

	p := &PlayerCharacterController{
		body:    body,
		camera:  camera,
		actions: actions,
	}
	p.SetConfig(cfg)

	body.SetHeight(cfg.CapsuleHeightStanding)
	body.SetCenter(rl.Vector3{Y: cfg.CapsuleHeightStanding / 2})
	p.state.InitialCameraYOffset = camera.LocalPosition().Y

	return p, nil
}

// SetConfig replaces the tuning. Height changes are picked up by the blend on
// the next frame rather than applied instantly.
func (p *PlayerCharacterController) SetConfig(cfg config.Player) {
	for _, w := range cfg.Validate() {
		log.Printf("Player: config warning: %s", w)
	}
	p.cfg = cfg
	p.body.ConfigureGroundCheck(engine.LayerMask(cfg.GroundCheckLayers), cfg.GroundCheckDistance)
}

func (p *PlayerCharacterController) Config() config.Player {
	return p.cfg
}

// State returns a copy of the motion state.
func (p *PlayerCharacterController) State() PlayerMotionState {
	return p.state
}

func (p *PlayerCharacterController) IsGrounded() bool {
	return p.body.IsGrounded()
}

// OnEnable subscribes to the action map and enables it.
func (p *PlayerCharacterController) OnEnable() {
	if p.actions == nil || len(p.unbind) > 0 {
		return
	}
	a := p.actions
	p.unbind = append(p.unbind,
		bind(&a.Move.Performed, p.SetMoveInput),
		bind(&a.Move.Canceled, p.SetMoveInput),
		bind(&a.Look.Performed, p.SetLookInput),
		bind(&a.Look.Canceled, p.SetLookInput),
		bind(&a.Jump.Performed, p.SetJumpHeld),
		bind(&a.Jump.Canceled, p.SetJumpHeld),
		bind(&a.Sprint.Performed, p.SetSprintHeld),
		bind(&a.Sprint.Canceled, p.SetSprintHeld),
		bind(&a.Crouch.Performed, func(bool) { p.ToggleCrouch() }),
	)
	a.Enable()
}

// OnDisable disables the action map first so in-flight actions cancel into
// the controller, then unsubscribes.
func (p *PlayerCharacterController) OnDisable() {
	if p.actions == nil {
		return
	}
	p.actions.Disable()
	for _, fn := range p.unbind {
		fn()
	}
	p.unbind = nil
}

func bind[T any](e *engine.EventWithArg[T], fn func(T)) func() {
	id := e.AddListener(fn)
	return func() { e.RemoveListener(id) }
}

func (p *PlayerCharacterController) SetMoveInput(v rl.Vector2) {
	p.state.MoveAxis = v
}

func (p *PlayerCharacterController) SetLookInput(v rl.Vector2) {
	p.state.LookAxis = v
}

func (p *PlayerCharacterController) SetJumpHeld(held bool) {
	p.state.JumpHeld = held
}

func (p *PlayerCharacterController) SetSprintHeld(held bool) {
	p.state.SprintHeld = held
}

// ToggleCrouch flips stance while grounded and drops sprint. Airborne toggles
// are ignored.
func (p *PlayerCharacterController) ToggleCrouch() {
	if !p.body.IsGrounded() {
		return
	}
	p.state.Crouching = !p.state.Crouching
	p.state.SprintHeld = false
	p.StanceChanged.Invoke(p.state.Crouching)
}

// Teleport places the body at position facing yaw, levels the camera and
// drops any vertical velocity.
func (p *PlayerCharacterController) Teleport(position rl.Vector3, yaw float32) {
	t := &p.GetGameObject().Transform
	t.Position = position
	t.Rotation.Y = 0
	t.RotateYaw(yaw)
	p.camera.SetLocalRotation(rl.Vector3{})
	p.state.VerticalVelocity = 0
}

func (p *PlayerCharacterController) Update(deltaTime float32) {
	if p.GetGameObject() == nil {
		return
	}
	p.handleMovement(deltaTime)
	p.handleCrouch(deltaTime)
	p.handleJump()
	p.applyGravity(deltaTime)
	p.handleLook(deltaTime)
}
