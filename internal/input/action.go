package input

import (
	"fpsplayer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a named input with a current value. Performed fires when the
// value is produced, Canceled when it returns to rest. A disabled action
// drops everything sent to it.
type Action[T any] struct {
	Name      string
	Performed engine.EventWithArg[T]
	Canceled  engine.EventWithArg[T]

	enabled bool
	active  bool
	value   T
}

func NewAction[T any](name string) *Action[T] {
	return &Action[T]{Name: name}
}

func (a *Action[T]) Enabled() bool { return a.enabled }

// InProgress reports whether the action has been performed and not canceled.
func (a *Action[T]) InProgress() bool { return a.active }

func (a *Action[T]) Value() T { return a.value }

func (a *Action[T]) Enable() {
	a.enabled = true
}

// Disable cancels an in-progress action before switching off, so listeners
// never see a held state that will not be released.
func (a *Action[T]) Disable() {
	if !a.enabled {
		return
	}
	a.Cancel()
	a.enabled = false
}

func (a *Action[T]) Perform(v T) {
	if !a.enabled {
		return
	}
	a.value = v
	a.active = true
	a.Performed.Invoke(v)
}

func (a *Action[T]) Cancel() {
	if !a.enabled || !a.active {
		return
	}
	var zero T
	a.value = zero
	a.active = false
	a.Canceled.Invoke(zero)
}

// PlayerActions is the action map of the first-person player.
type PlayerActions struct {
	Move   *Action[rl.Vector2]
	Look   *Action[rl.Vector2]
	Jump   *Action[bool]
	Sprint *Action[bool]
	Crouch *Action[bool]
}

func NewPlayerActions() *PlayerActions {
	return &PlayerActions{
		Move:   NewAction[rl.Vector2]("Move"),
		Look:   NewAction[rl.Vector2]("Look"),
		Jump:   NewAction[bool]("Jump"),
		Sprint: NewAction[bool]("Sprint"),
		Crouch: NewAction[bool]("Crouch"),
	}
}

func (p *PlayerActions) Enable() {
	p.Move.Enable()
	p.Look.Enable()
	p.Jump.Enable()
	p.Sprint.Enable()
	p.Crouch.Enable()
}

func (p *PlayerActions) Disable() {
	p.Move.Disable()
	p.Look.Disable()
	p.Jump.Disable()
	p.Sprint.Disable()
	p.Crouch.Disable()
}
