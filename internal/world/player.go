package world

import (
	"fpsplayer/internal/components"
	"fpsplayer/internal/config"
	"fpsplayer/internal/engine"
	"fpsplayer/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// EyeHeight is the standing camera height above the feet.
const EyeHeight = 1.6

// Player bundles the objects and components that make up the first-person
// player: a body carrying the collision capsule and controller, and a child
// camera object carrying pitch and eye height.
type Player struct {
	Object     *engine.GameObject
	Body       *components.CharacterController
	Camera     *components.Camera
	Controller *components.PlayerCharacterController
}

// SpawnPlayer builds the player at position facing yaw and adds it to the
// scene. The scene still needs Start before the controller receives input.
func SpawnPlayer(scene *engine.Scene, cfg config.Player, actions *input.PlayerActions, position rl.Vector3, yaw float32) (*Player, error) {
	body := engine.NewGameObject("Player")
	body.Tags = []string{"Player"}
	body.Transform.Position = position
	body.Transform.RotateYaw(yaw)

	eye := engine.NewGameObject("Camera")
	eye.Transform.Position = rl.Vector3{Y: EyeHeight}
	cam := components.NewCamera()
	eye.AddComponent(cam)
	body.AddChild(eye)

	capsule := components.NewCharacterController()
	ctrl, err := components.NewPlayerCharacterController(cfg, capsule, cam, actions)
	if err != nil {
		return nil, err
	}
	body.AddComponent(capsule)
	body.AddComponent(ctrl)

	scene.AddGameObject(body)

	return &Player{
		Object:     body,
		Body:       capsule,
		Camera:     cam,
		Controller: ctrl,
	}, nil
}

func (p *Player) Position() rl.Vector3 {
	return p.Object.Transform.Position
}

func (p *Player) RaylibCamera() rl.Camera3D {
	return p.Camera.GetRaylibCamera()
}
