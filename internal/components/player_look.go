package components

import rl "github.com/gen2brain/raylib-go/raylib"

// Pitch limit in degrees. config.Player.VerticalCameraClamp is not applied.
const pitchLimit = 90

// handleLook turns the body for yaw and tilts the camera for pitch. The camera
// keeps no yaw or roll of its own.
func (p *PlayerCharacterController) handleLook(deltaTime float32) {
	mouseX := p.state.LookAxis.X * p.cfg.MouseSensitivity * deltaTime
	mouseY := p.state.LookAxis.Y * p.cfg.MouseSensitivity * deltaTime

	p.GetGameObject().Transform.RotateYaw(mouseX)

	pitch := p.camera.LocalRotation().X - mouseY
	if pitch > 180 {
		pitch -= 360
	}
	pitch = rl.Clamp(pitch, -pitchLimit, pitchLimit)

	p.camera.SetLocalRotation(rl.Vector3{X: pitch})
}

// Pitch is the camera's current pitch in degrees, positive looking down.
func (p *PlayerCharacterController) Pitch() float32 {
	return p.camera.LocalRotation().X
}
