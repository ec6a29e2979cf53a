package components

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"fpsplayer/internal/config"
	"fpsplayer/internal/engine"
	"fpsplayer/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeBody struct {
	height   float32
	center   rl.Vector3
	grounded bool
	moves    []rl.Vector3
	layers   engine.LayerMask
	distance float32
}

func (b *fakeBody) Height() float32 { return b.height }
func (b *fakeBody) SetHeight(h float32) { b.height = h }
func (b *fakeBody) Center() rl.Vector3 { return b.center }
func (b *fakeBody) SetCenter(c rl.Vector3) { b.center = c }
func (b *fakeBody) IsGrounded() bool { return b.grounded }
func (b *fakeBody) Move(m rl.Vector3) rl.Vector3 { b.moves = append(b.moves, m); return m }
func (b *fakeBody) ConfigureGroundCheck(layers engine.LayerMask, distance float32) {
	b.layers = layers
	b.distance = distance
}

type fakeCamera struct {
	pos rl.Vector3
	rot rl.Vector3
}

func (c *fakeCamera) LocalPosition() rl.Vector3 { return c.pos }
func (c *fakeCamera) SetLocalPosition(p rl.Vector3) { c.pos = p }
func (c *fakeCamera) LocalRotation() rl.Vector3 { return c.rot }
func (c *fakeCamera) SetLocalRotation(r rl.Vector3) { c.rot = r }

func newTestPlayer(t *testing.T, cfg config.Player) (*PlayerCharacterController, *fakeBody, *fakeCamera) {
	t.Helper()
	body := &fakeBody{grounded: true}
	cam := &fakeCamera{pos: rl.Vector3{Y: 1.6}}
	p, err := NewPlayerCharacterController(cfg, body, cam, nil)
	if err != nil {
		t.Fatalf("NewPlayerCharacterController: %v", err)
	}
	g := engine.NewGameObject("Player")
	g.AddComponent(p)
	return p, body, cam
}

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func horizontalSpeed(v rl.Vector3) float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Z)))
}

func TestNewPlayerCharacterControllerRequiresCollaborators(t *testing.T) {
	cfg := config.DefaultPlayer()
	if _, err := NewPlayerCharacterController(cfg, nil, &fakeCamera{}, nil); !errors.Is(err, ErrNoBody) {
		t.Errorf("expected ErrNoBody, got %v", err)
	}
	if _, err := NewPlayerCharacterController(cfg, &fakeBody{}, nil, nil); !errors.Is(err, ErrNoCamera) {
		t.Errorf("expected ErrNoCamera, got %v", err)
	}
}

func TestNewPlayerCharacterControllerInitialState(t *testing.T) {
	cfg := config.DefaultPlayer()
	cfg.GroundCheckLayers = 0b101
	cfg.GroundCheckDistance = 0.2
	p, body, _ := newTestPlayer(t, cfg)

	if body.height != 1.8 || body.center != (rl.Vector3{Y: 0.9}) {
		t.Errorf("expected standing capsule, got height=%v center=%v", body.height, body.center)
	}
	if body.layers != engine.LayerMask(0b101) || body.distance != 0.2 {
		t.Errorf("ground check not configured: layers=%b distance=%v", body.layers, body.distance)
	}
	s := p.State()
	if s.InitialCameraYOffset != 1.6 {
		t.Errorf("expected captured camera offset 1.6, got %v", s.InitialCameraYOffset)
	}
	if s.VerticalVelocity != 0 || s.Crouching {
		t.Errorf("expected resting state, got %+v", s)
	}
}

func TestJumpVelocity(t *testing.T) {
	p, body, _ := newTestPlayer(t, config.DefaultPlayer())
	jumps := 0
	p.Jumped.AddListener(func() { jumps++ })

	p.SetSprintHeld(true)
	p.SetJumpHeld(true)
	p.handleJump()

	want := float32(math.Sqrt(9 * 2 * 9.81))
	if !approx(p.State().VerticalVelocity, want, 1e-3) || !approx(want, 13.288, 1e-3) {
		t.Errorf("jump velocity = %v, expected %v", p.State().VerticalVelocity, want)
	}
	if p.State().SprintHeld {
		t.Error("jump should clear sprint")
	}
	if jumps != 1 {
		t.Errorf("expected Jumped once, got %d", jumps)
	}

	// same frame: gravity subtracts after the impulse, no ground clamp
	dt := float32(1.0 / 60)
	p.applyGravity(dt)
	if !approx(p.State().VerticalVelocity, want-9.81*dt, 1e-4) {
		t.Errorf("velocity after gravity = %v, expected %v", p.State().VerticalVelocity, want-9.81*dt)
	}
	last := body.moves[len(body.moves)-1]
	if last.X != 0 || last.Z != 0 || !approx(last.Y, p.State().VerticalVelocity*dt, 1e-6) {
		t.Errorf("vertical move = %v", last)
	}
}

func TestJumpVelocityPositive(t *testing.T) {
	tests := []struct {
		jump    float32
		gravity float32
	}{
		{0.5, -9.81},
		{9, -20},
		{2, -1.62},
	}
	for _, tt := range tests {
		cfg := config.DefaultPlayer()
		cfg.JumpForce = tt.jump
		cfg.GravityDownForce = tt.gravity
		p, _, _ := newTestPlayer(t, cfg)
		p.SetJumpHeld(true)
		p.handleJump()
		want := float32(math.Sqrt(float64(tt.jump * -2 * tt.gravity)))
		if v := p.State().VerticalVelocity; v <= 0 || !approx(v, want, 1e-3) {
			t.Errorf("jump=%v gravity=%v: velocity %v, expected %v", tt.jump, tt.gravity, v, want)
		}
	}
}

func TestJumpRequiresGround(t *testing.T) {
	p, body, _ := newTestPlayer(t, config.DefaultPlayer())
	body.grounded = false
	p.SetJumpHeld(true)
	p.SetSprintHeld(true)
	p.handleJump()
	if p.State().VerticalVelocity != 0 || !p.State().SprintHeld {
		t.Errorf("airborne jump should do nothing, got %+v", p.State())
	}
}

func TestAirborneVelocityDecreases(t *testing.T) {
	p, body, _ := newTestPlayer(t, config.DefaultPlayer())
	body.grounded = false
	dt := float32(1.0 / 60)

	prev := p.State().VerticalVelocity
	for i := 0; i < 120; i++ {
		p.Update(dt)
		v := p.State().VerticalVelocity
		if v >= prev {
			t.Fatalf("frame %d: velocity %v did not decrease from %v", i, v, prev)
		}
		prev = v
	}
}

func TestGroundedClampsToStickVelocity(t *testing.T) {
	p, _, _ := newTestPlayer(t, config.DefaultPlayer())
	dt := float32(1.0 / 60)

	p.Update(dt)
	if !approx(p.State().VerticalVelocity, -9.81*dt, 1e-5) {
		t.Errorf("first grounded frame velocity = %v", p.State().VerticalVelocity)
	}
	for i := 0; i < 10; i++ {
		p.Update(dt)
	}
	if !approx(p.State().VerticalVelocity, -2-9.81*dt, 1e-5) {
		t.Errorf("grounded velocity = %v, expected %v", p.State().VerticalVelocity, -2-9.81*dt)
	}
}

func TestCrouchToggle(t *testing.T) {
	p, body, _ := newTestPlayer(t, config.DefaultPlayer())
	var stances []bool
	p.StanceChanged.AddListener(func(c bool) { stances = append(stances, c) })

	body.grounded = false
	p.ToggleCrouch()
	if p.State().Crouching || len(stances) != 0 {
		t.Error("crouch toggle should be ignored while airborne")
	}

	body.grounded = true
	p.SetSprintHeld(true)
	p.ToggleCrouch()
	if !p.State().Crouching || p.State().SprintHeld {
		t.Errorf("grounded toggle should crouch and drop sprint, got %+v", p.State())
	}
	p.ToggleCrouch()
	if p.State().Crouching {
		t.Error("second toggle should stand up")
	}
	if len(stances) != 2 || !stances[0] || stances[1] {
		t.Errorf("unexpected stance events %v", stances)
	}
}

func TestCrouchBlendScenario(t *testing.T) {
	for _, dt := range []float32{0.1, 0.05, 1.0 / 60} {
		cfg := config.DefaultPlayer()
		p, body, _ := newTestPlayer(t, cfg)
		p.ToggleCrouch()

		prev := body.height
		for i := 0; i < 200; i++ {
			p.Update(dt)
			if body.height < cfg.CapsuleHeightCrouching {
				t.Fatalf("dt=%v frame %d: height %v undershot %v", dt, i, body.height, cfg.CapsuleHeightCrouching)
			}
			if body.height > prev {
				t.Fatalf("dt=%v frame %d: height grew from %v to %v", dt, i, prev, body.height)
			}
			if body.center.Y != body.height/2 {
				t.Fatalf("center %v not at half height %v", body.center.Y, body.height/2)
			}
			prev = body.height
		}
		if !approx(body.height, 0.9, stanceEpsilon) {
			t.Errorf("dt=%v: height %v did not settle at 0.9", dt, body.height)
		}
	}
}

func TestCrouchBlendMovesBodyAndCamera(t *testing.T) {
	p, body, cam := newTestPlayer(t, config.DefaultPlayer())
	g := p.GetGameObject()
	g.Transform.Position.Y = 5
	p.ToggleCrouch()

	// sharpness 10 * dt 0.1 reaches the target in one step
	p.Update(0.1)

	if !approx(body.height, 0.9, 1e-5) {
		t.Errorf("height = %v, expected 0.9", body.height)
	}
	if !approx(g.Transform.Position.Y, 5-0.45, 1e-5) {
		t.Errorf("body Y = %v, expected %v", g.Transform.Position.Y, 5-0.45)
	}
	if !approx(cam.pos.Y, 0.8, 1e-5) {
		t.Errorf("camera Y = %v, expected 0.8", cam.pos.Y)
	}
}

func TestStanceBlendIdempotentAtTarget(t *testing.T) {
	p, body, cam := newTestPlayer(t, config.DefaultPlayer())
	g := p.GetGameObject()
	dt := float32(1.0 / 60)

	p.ToggleCrouch()
	for i := 0; i < 500 && !approx(body.height, 0.9, stanceEpsilon); i++ {
		p.Update(dt)
	}

	height, center, pos, camPos := body.height, body.center, g.Transform.Position, cam.pos
	for i := 0; i < 30; i++ {
		p.Update(dt)
	}
	if body.height != height || body.center != center {
		t.Errorf("capsule changed at fixed point: %v/%v -> %v/%v", height, center, body.height, body.center)
	}
	if g.Transform.Position != pos {
		t.Errorf("body moved at fixed point: %v -> %v", pos, g.Transform.Position)
	}
	if cam.pos != camPos {
		t.Errorf("camera moved at fixed point: %v -> %v", camPos, cam.pos)
	}
}

func TestPitchStaysClamped(t *testing.T) {
	p, _, cam := newTestPlayer(t, config.DefaultPlayer())
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		mag := float32(math.Pow(10, float64(rng.Intn(6))))
		p.SetLookInput(rl.Vector2{X: (rng.Float32()*2 - 1) * mag, Y: (rng.Float32()*2 - 1) * mag})
		p.handleLook(1.0 / 60)
		if pitch := cam.rot.X; pitch < -90 || pitch > 90 {
			t.Fatalf("step %d: pitch %v outside [-90, 90]", i, pitch)
		}
		if cam.rot.Y != 0 || cam.rot.Z != 0 {
			t.Fatalf("camera should carry pitch only, got %v", cam.rot)
		}
	}
}

func TestLookDirections(t *testing.T) {
	p, _, cam := newTestPlayer(t, config.DefaultPlayer())
	g := p.GetGameObject()

	p.SetLookInput(rl.Vector2{X: 1, Y: 1})
	p.handleLook(0.1)

	if !approx(g.Transform.Rotation.Y, 10, 1e-4) {
		t.Errorf("yaw = %v, expected 10", g.Transform.Rotation.Y)
	}
	if !approx(cam.rot.X, -10, 1e-4) {
		t.Errorf("pitch = %v, expected -10 (look up)", cam.rot.X)
	}

	// angles reported in 0..360 fold back before clamping
	cam.rot.X = 350
	p.SetLookInput(rl.Vector2{})
	p.handleLook(0.1)
	if !approx(cam.rot.X, -10, 1e-4) {
		t.Errorf("pitch 350 should wrap to -10, got %v", cam.rot.X)
	}
}

func TestSpeedPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		crouching bool
		sprint    bool
		jump      bool
		grounded  bool
		want      float32
	}{
		{"walk", false, false, false, true, 10},
		{"sprint", false, true, false, true, 20},
		{"crouch overrides sprint", true, true, false, true, 5},
		{"no sprint in air", false, true, false, false, 10},
		{"no sprint while jump held", false, true, true, true, 10},
		{"crouch in air", true, false, false, false, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, body, _ := newTestPlayer(t, config.DefaultPlayer())
			p.state.Crouching = tt.crouching
			p.SetSprintHeld(tt.sprint)
			p.SetJumpHeld(tt.jump)
			body.grounded = tt.grounded
			p.SetMoveInput(rl.Vector2{Y: 1})

			if got := horizontalSpeed(p.HorizontalVelocity()); !approx(got, tt.want, 1e-4) {
				t.Errorf("speed = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestDiagonalMoveIsNotNormalized(t *testing.T) {
	p, body, _ := newTestPlayer(t, config.DefaultPlayer())
	p.GetGameObject().Transform.Rotation.Y = 37
	p.SetMoveInput(rl.Vector2{X: 1, Y: 1})

	dt := float32(0.02)
	p.Update(dt)

	if len(body.moves) != 2 {
		t.Fatalf("expected horizontal then vertical move, got %d moves", len(body.moves))
	}
	horizontal, vertical := body.moves[0], body.moves[1]
	want := 10 * float32(math.Sqrt2) * dt
	if horizontal.Y != 0 || !approx(horizontalSpeed(horizontal), want, 1e-4) {
		t.Errorf("horizontal move = %v, expected length %v", horizontal, want)
	}
	if vertical.X != 0 || vertical.Z != 0 {
		t.Errorf("second move should be vertical only, got %v", vertical)
	}
}

func TestForwardFollowsYaw(t *testing.T) {
	p, _, _ := newTestPlayer(t, config.DefaultPlayer())
	p.GetGameObject().Transform.Rotation.Y = 90
	p.SetMoveInput(rl.Vector2{Y: 1})

	v := p.HorizontalVelocity()
	if !approx(v.X, 10, 1e-4) || !approx(v.Z, 0, 1e-4) {
		t.Errorf("forward at yaw 90 = %v, expected +X", v)
	}
}

func TestInputLifecycle(t *testing.T) {
	actions := input.NewPlayerActions()
	body := &fakeBody{grounded: true}
	cam := &fakeCamera{pos: rl.Vector3{Y: 1.6}}
	p, err := NewPlayerCharacterController(config.DefaultPlayer(), body, cam, actions)
	if err != nil {
		t.Fatal(err)
	}
	g := engine.NewGameObject("Player")
	g.AddComponent(p)

	actions.Jump.Perform(true)
	if p.State().JumpHeld {
		t.Error("actions should stay disabled until the object starts")
	}

	g.Start()
	actions.Jump.Perform(true)
	actions.Sprint.Perform(true)
	actions.Move.Perform(rl.Vector2{X: 0.5, Y: 1})
	actions.Crouch.Perform(true)

	s := p.State()
	if !s.JumpHeld || s.MoveAxis != (rl.Vector2{X: 0.5, Y: 1}) || !s.Crouching {
		t.Errorf("actions not routed to controller: %+v", s)
	}
	if s.SprintHeld {
		t.Error("crouch toggle should drop sprint")
	}

	g.SetActive(false)
	s = p.State()
	if s.JumpHeld || s.MoveAxis != (rl.Vector2{}) {
		t.Errorf("disable should cancel held input, got %+v", s)
	}
	if n := actions.Jump.Performed.GetListenerCount(); n != 0 {
		t.Errorf("expected listeners removed, %d left", n)
	}

	g.SetActive(true)
	actions.Sprint.Perform(true)
	if !p.State().SprintHeld {
		t.Error("re-enable should rebind input")
	}
}

func TestSetConfigReconfiguresGroundCheck(t *testing.T) {
	p, body, _ := newTestPlayer(t, config.DefaultPlayer())
	cfg := config.DefaultPlayer()
	cfg.GroundCheckLayers = 1
	cfg.GroundCheckDistance = 0.3
	cfg.MaxSpeedOnGround = 4

	p.SetConfig(cfg)

	if body.layers != 1 || body.distance != 0.3 {
		t.Errorf("ground check not updated: %b %v", body.layers, body.distance)
	}
	if p.Config().MaxSpeedOnGround != 4 {
		t.Errorf("config not replaced")
	}
}
