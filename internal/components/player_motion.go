package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vertical speed held while grounded so the body keeps touching the floor.
const groundedStickVelocity = -2

// speedMultiplier picks crouch, then sprint, then walk.
func (p *PlayerCharacterController) speedMultiplier() float32 {
	s := &p.state
	if s.Crouching {
		return p.cfg.CrouchSpeedModifier
	}
	if s.SprintHeld && p.body.IsGrounded() && !s.JumpHeld && !s.Crouching {
		return p.cfg.SprintSpeedModifier
	}
	return 1
}

// HorizontalVelocity is the world-space ground velocity for the current input.
// The move axis is not normalized, so diagonals are faster.
func (p *PlayerCharacterController) HorizontalVelocity() rl.Vector3 {
	t := p.GetGameObject().Transform
	dir := rl.Vector3Add(
		rl.Vector3Scale(t.Right(), p.state.MoveAxis.X),
		rl.Vector3Scale(t.Forward(), p.state.MoveAxis.Y),
	)
	return rl.Vector3Scale(dir, p.cfg.MaxSpeedOnGround*p.speedMultiplier())
}

func (p *PlayerCharacterController) handleMovement(deltaTime float32) {
	p.body.Move(rl.Vector3Scale(p.HorizontalVelocity(), deltaTime))
}

// jumpVelocity is the launch speed that peaks at JumpForce units under
// GravityDownForce. Misconfigured signs give 0, i.e. no jump.
func (p *PlayerCharacterController) jumpVelocity() float32 {
	v2 := float64(p.cfg.JumpForce * -2 * p.cfg.GravityDownForce)
	if v2 <= 0 {
		return 0
	}
	return float32(math.Sqrt(v2))
}

func (p *PlayerCharacterController) handleJump() {
	if !p.state.JumpHeld || !p.body.IsGrounded() {
		return
	}
	p.state.VerticalVelocity = p.jumpVelocity()
	p.state.SprintHeld = false
	p.Jumped.Invoke()
}

// applyGravity reads grounded from the previous Move, so leaving a ledge
// re-engages gravity one frame late.
func (p *PlayerCharacterController) applyGravity(deltaTime float32) {
	if p.body.IsGrounded() && p.state.VerticalVelocity < 0 {
		p.state.VerticalVelocity = groundedStickVelocity
	}
	p.state.VerticalVelocity += p.cfg.GravityDownForce * deltaTime
	p.body.Move(rl.Vector3{Y: p.state.VerticalVelocity * deltaTime})
}
