package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Height difference below which the stance blend is considered settled.
const stanceEpsilon = 0.01

func (p *PlayerCharacterController) targetHeight() float32 {
	if p.state.Crouching {
		return p.cfg.CapsuleHeightCrouching
	}
	return p.cfg.CapsuleHeightStanding
}

// blendFactor mirrors a clamped lerp: rate*dt limited to [0, 1] so the blend
// never overshoots its target.
func (p *PlayerCharacterController) blendFactor(deltaTime float32) float32 {
	return rl.Clamp(p.cfg.CrouchingSharpness*deltaTime, 0, 1)
}

// handleCrouch eases the capsule toward the stance height, keeps the center
// at half height and shifts the body by half the change.
func (p *PlayerCharacterController) handleCrouch(deltaTime float32) {
	current := p.body.Height()
	target := p.targetHeight()
	if float32(math.Abs(float64(current-target))) <= stanceEpsilon {
		return
	}

	newHeight := rl.Lerp(current, target, p.blendFactor(deltaTime))
	delta := newHeight - current

	p.body.SetHeight(newHeight)
	p.body.SetCenter(rl.Vector3{Y: newHeight / 2})

	t := &p.GetGameObject().Transform
	t.Position = rl.Vector3Add(t.Position, rl.Vector3Scale(t.Up(), delta/2))

	p.updateCameraHeight(newHeight, deltaTime)
}

// updateCameraHeight eases the eye toward the initial offset scaled by the
// capsule's fraction of standing height.
func (p *PlayerCharacterController) updateCameraHeight(height, deltaTime float32) {
	if p.cfg.CapsuleHeightStanding <= 0 {
		return
	}
	offset := p.state.InitialCameraYOffset * (height / p.cfg.CapsuleHeightStanding)

	pos := p.camera.LocalPosition()
	pos.Y = rl.Lerp(pos.Y, offset, p.blendFactor(deltaTime))
	p.camera.SetLocalPosition(pos)
}
