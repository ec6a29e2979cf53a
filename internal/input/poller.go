package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Device is the raw keyboard/mouse state for the current frame.
type Device interface {
	IsKeyDown(key int32) bool
	MouseDelta() rl.Vector2
}

// RaylibDevice reads the window's input through raylib.
type RaylibDevice struct{}

func (RaylibDevice) IsKeyDown(key int32) bool { return rl.IsKeyDown(key) }

func (RaylibDevice) MouseDelta() rl.Vector2 { return rl.GetMouseDelta() }

// Poller turns device state into action events once per frame, before the
// simulation tick. Axes perform whenever they change and cancel at rest;
// buttons perform on press and cancel on release.
type Poller struct {
	device   Device
	bindings Bindings
	actions  *PlayerActions

	jumpDown   bool
	sprintDown bool
	crouchDown bool
}

func NewPoller(device Device, bindings Bindings, actions *PlayerActions) *Poller {
	return &Poller{device: device, bindings: bindings, actions: actions}
}

func (p *Poller) SetBindings(b Bindings) {
	p.bindings = b
}

func (p *Poller) Poll() {
	p.pollAxis(p.actions.Move, p.moveAxis())
	p.pollAxis(p.actions.Look, p.lookAxis())
	p.pollButton(p.bindings.Jump, &p.jumpDown, p.actions.Jump)
	p.pollButton(p.bindings.Sprint, &p.sprintDown, p.actions.Sprint)
	p.pollButton(p.bindings.Crouch, &p.crouchDown, p.actions.Crouch)
}

func (p *Poller) moveAxis() rl.Vector2 {
	var axis rl.Vector2
	if p.device.IsKeyDown(p.bindings.Forward) {
		axis.Y++
	}
	if p.device.IsKeyDown(p.bindings.Back) {
		axis.Y--
	}
	if p.device.IsKeyDown(p.bindings.Right) {
		axis.X++
	}
	if p.device.IsKeyDown(p.bindings.Left) {
		axis.X--
	}
	return axis
}

// lookAxis converts screen-space mouse delta (Y down) into look input (Y up).
func (p *Poller) lookAxis() rl.Vector2 {
	d := p.device.MouseDelta()
	look := rl.Vector2{X: d.X, Y: -d.Y}
	if p.bindings.InvertY {
		look.Y = -look.Y
	}
	return look
}

func (p *Poller) pollAxis(a *Action[rl.Vector2], v rl.Vector2) {
	if v.X == 0 && v.Y == 0 {
		a.Cancel()
		return
	}
	if a.InProgress() && a.Value() == v {
		return
	}
	a.Perform(v)
}

func (p *Poller) pollButton(key int32, wasDown *bool, a *Action[bool]) {
	down := p.device.IsKeyDown(key)
	switch {
	case down && !*wasDown:
		a.Perform(true)
	case !down && *wasDown:
		a.Cancel()
	}
	*wasDown = down
}
