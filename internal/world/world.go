package world

import (
	"log"

	"fpsplayer/internal/components"
	"fpsplayer/internal/config"
	"fpsplayer/internal/engine"
	"fpsplayer/internal/input"
	"fpsplayer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bodies that fall below this height are sent back to the spawn point.
const DefaultKillHeight = -30.0

type World struct {
	Scene      *engine.Scene
	Player     *Player
	Spawn      rl.Vector3
	SpawnYaw   float32
	KillHeight float32

	// Boxes drawn on the last frame after culling
	Drawn int
}

func New() *World {
	return &World{
		Scene:      engine.NewScene("Main"),
		KillHeight: DefaultKillHeight,
	}
}

// Load adds the level's geometry to the scene and takes its spawn point.
func (w *World) Load(lf *LevelFile) {
	for _, g := range lf.Build() {
		w.Scene.AddGameObject(g)
	}
	w.Spawn = vec3(lf.Spawn)
	w.SpawnYaw = lf.SpawnYaw
}

// SpawnPlayer places the player at the level's spawn point.
func (w *World) SpawnPlayer(cfg config.Player, actions *input.PlayerActions) error {
	p, err := SpawnPlayer(w.Scene, cfg, actions, w.Spawn, w.SpawnYaw)
	if err != nil {
		return err
	}
	w.Player = p
	return nil
}

// Start all GameObjects
func (w *World) Start() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)

	if w.Player != nil && w.Player.Position().Y < w.KillHeight {
		log.Printf("World: player fell below %.1f, respawning", w.KillHeight)
		w.Respawn()
	}
}

func (w *World) Respawn() {
	if w.Player == nil {
		return
	}
	w.Player.Controller.Teleport(w.Spawn, w.SpawnYaw)
}

// Draw renders every box inside the camera frustum. Must be called between
// BeginMode3D and EndMode3D.
func (w *World) Draw(camera rl.Camera3D, aspect float32) {
	frustum := ExtractFrustum(camera, aspect)
	w.Drawn = 0

	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		r := engine.GetComponent[*components.BoxRenderer](g)
		if r == nil {
			continue
		}
		if !frustum.ContainsSphere(g.WorldPosition(), r.BoundingRadius()) {
			continue
		}
		r.Draw()
		w.Drawn++
	}
}

// Hit is a raycast result against level geometry.
type Hit struct {
	physics.RaycastHit
	Object *engine.GameObject
}

// Raycast returns the closest box collider hit within maxDistance.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (Hit, bool) {
	closest := Hit{RaycastHit: physics.RaycastHit{Distance: maxDistance}}
	found := false
	for _, col := range engine.FindComponents[*components.BoxCollider](w.Scene) {
		h, ok := physics.RaycastAABB(origin, direction, col.GetAABB(), maxDistance)
		if !ok || h.Distance > closest.Distance {
			continue
		}
		closest = Hit{RaycastHit: h, Object: col.GetGameObject()}
		found = true
	}
	return closest, found
}

// LookTarget is what the player's crosshair rests on.
func (w *World) LookTarget(maxDistance float32) (Hit, bool) {
	if w.Player == nil {
		return Hit{}, false
	}
	cam := w.Player.RaylibCamera()
	return w.Raycast(cam.Position, rl.Vector3Subtract(cam.Target, cam.Position), maxDistance)
}
