package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Player Player       `yaml:"player"`
	Input  InputConfig  `yaml:"input"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"targetFps"`
}

// Player holds the tuning of the first-person controller. Fields marked inert
// are loaded and validated but not read by any integrator yet.
type Player struct {
	// Downward acceleration applied every frame (negative).
	GravityDownForce float32 `yaml:"gravityDownForce"`
	// Layers that count as ground for the grounded check.
	GroundCheckLayers uint32 `yaml:"groundCheckLayers"`
	// Distance below the capsule still treated as standing on ground.
	GroundCheckDistance float32 `yaml:"groundCheckDistance"`

	// Walking speed in units per second.
	MaxSpeedOnGround float32 `yaml:"maxSpeedOnGround"`
	// Inert: ground acceleration sharpness.
	MovementSharpnessOnGround float32 `yaml:"movementSharpnessOnGround"`
	// Speed multiplier while crouched, 0..1.
	CrouchSpeedModifier float32 `yaml:"crouchSpeedModifier"`
	// Speed multiplier while sprinting.
	SprintSpeedModifier float32 `yaml:"sprintSpeedModifier"`
	// Inert: air control top speed.
	MaxSpeedInAir float32 `yaml:"maxSpeedInAir"`
	// Inert: air control acceleration.
	AccelerationSpeedInAir float32 `yaml:"accelerationSpeedInAir"`

	// Apex height of a jump in units.
	JumpForce float32 `yaml:"jumpForce"`

	// Inert: camera rotation speed.
	RotationSpeed float32 `yaml:"rotationSpeed"`
	// Inert: rotation multiplier while aiming, 0.1..1.
	AimingRotationMultiplier float32 `yaml:"aimingRotationMultiplier"`
	// Inert: pitch limit in degrees. Pitch is clamped to +/-90.
	VerticalCameraClamp float32 `yaml:"verticalCameraClamp"`

	// Inert: camera height as a fraction of capsule height.
	CameraHeightRatio float32 `yaml:"cameraHeightRatio"`
	// Capsule height when standing.
	CapsuleHeightStanding float32 `yaml:"capsuleHeightStanding"`
	// Capsule height when crouched.
	CapsuleHeightCrouching float32 `yaml:"capsuleHeightCrouching"`
	// Blend rate for capsule height and camera height.
	CrouchingSharpness float32 `yaml:"crouchingSharpness"`

	// Degrees per second per unit of look input.
	MouseSensitivity float32 `yaml:"mouseSensitivity"`
}

// InputConfig names keys (see input.KeyByName) for each action.
type InputConfig struct {
	Forward string `yaml:"forward"`
	Back    string `yaml:"back"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Jump    string `yaml:"jump"`
	Sprint  string `yaml:"sprint"`
	Crouch  string `yaml:"crouch"`
	// Flip vertical mouse movement.
	InvertY bool `yaml:"invertY"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "First Person Controller",
			TargetFPS: 120,
		},
		Player: DefaultPlayer(),
		Input: InputConfig{
			Forward: "W",
			Back:    "S",
			Left:    "A",
			Right:   "D",
			Jump:    "Space",
			Sprint:  "LeftShift",
			Crouch:  "LeftControl",
		},
	}
}

func DefaultPlayer() Player {
	return Player{
		GravityDownForce:          -9.81,
		GroundCheckLayers:         ^uint32(0),
		GroundCheckDistance:       0.05,
		MaxSpeedOnGround:          10,
		MovementSharpnessOnGround: 15,
		CrouchSpeedModifier:       0.5,
		SprintSpeedModifier:       2,
		MaxSpeedInAir:             10,
		AccelerationSpeedInAir:    25,
		JumpForce:                 9,
		RotationSpeed:             200,
		AimingRotationMultiplier:  0.4,
		VerticalCameraClamp:       80,
		CameraHeightRatio:         0.9,
		CapsuleHeightStanding:     1.8,
		CapsuleHeightCrouching:    0.9,
		CrouchingSharpness:        10,
		MouseSensitivity:          100,
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Validate returns human readable warnings. None of them stop the controller:
// a degenerate crouch range just makes toggling a no-op.
func (p Player) Validate() []string {
	var warnings []string
	if p.CapsuleHeightCrouching <= 0 {
		warnings = append(warnings, fmt.Sprintf("capsuleHeightCrouching %.2f must be positive", p.CapsuleHeightCrouching))
	}
	if p.CapsuleHeightStanding <= 0 {
		warnings = append(warnings, fmt.Sprintf("capsuleHeightStanding %.2f must be positive", p.CapsuleHeightStanding))
	}
	if p.CapsuleHeightCrouching >= p.CapsuleHeightStanding {
		warnings = append(warnings, fmt.Sprintf("capsuleHeightCrouching %.2f should be below capsuleHeightStanding %.2f",
			p.CapsuleHeightCrouching, p.CapsuleHeightStanding))
	}
	if p.GravityDownForce >= 0 {
		warnings = append(warnings, fmt.Sprintf("gravityDownForce %.2f should be negative", p.GravityDownForce))
	}
	if p.JumpForce <= 0 {
		warnings = append(warnings, fmt.Sprintf("jumpForce %.2f disables jumping", p.JumpForce))
	}
	if p.CrouchSpeedModifier < 0 || p.CrouchSpeedModifier > 1 {
		warnings = append(warnings, fmt.Sprintf("crouchSpeedModifier %.2f outside 0..1", p.CrouchSpeedModifier))
	}
	if p.AimingRotationMultiplier < 0.1 || p.AimingRotationMultiplier > 1 {
		warnings = append(warnings, fmt.Sprintf("aimingRotationMultiplier %.2f outside 0.1..1", p.AimingRotationMultiplier))
	}
	if p.CrouchingSharpness < 0 {
		warnings = append(warnings, fmt.Sprintf("crouchingSharpness %.2f must not be negative", p.CrouchingSharpness))
	}
	if p.GroundCheckDistance < 0 {
		warnings = append(warnings, fmt.Sprintf("groundCheckDistance %.2f must not be negative", p.GroundCheckDistance))
	}
	return warnings
}
