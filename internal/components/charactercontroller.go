package components

import (
	"fpsplayer/internal/engine"
	"fpsplayer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CharacterController is the capsule collision volume of a walking character.
// The capsule is resolved as a box of 2*Radius x Height x 2*Radius whose
// center sits at Center relative to the object's position (its feet pivot).
// It implements engine.CapsuleBody.
type CharacterController struct {
	engine.BaseComponent

	Radius     float32 // Half-width of the capsule
	StepHeight float32 // Max height of steps to climb

	// Grounded detection
	GroundCheckLayers   engine.LayerMask
	GroundCheckDistance float32

	height     float32
	center     rl.Vector3
	isGrounded bool
}

// NewCharacterController creates a new character controller with defaults
func NewCharacterController() *CharacterController {
	return &CharacterController{
		Radius:              0.4,
		StepHeight:          0.3,
		GroundCheckLayers:   engine.AllLayers,
		GroundCheckDistance: 0.05,
		height:              1.8,
		center:              rl.Vector3{Y: 0.9},
	}
}

func (c *CharacterController) Height() float32 { return c.height }

func (c *CharacterController) SetHeight(h float32) { c.height = h }

func (c *CharacterController) Center() rl.Vector3 { return c.center }

func (c *CharacterController) SetCenter(center rl.Vector3) { c.center = center }

// IsGrounded reports whether the last Move ended on ground.
func (c *CharacterController) IsGrounded() bool { return c.isGrounded }

func (c *CharacterController) ConfigureGroundCheck(layers engine.LayerMask, distance float32) {
	c.GroundCheckLayers = layers
	c.GroundCheckDistance = distance
}

// Bounds returns the world-space collision box.
func (c *CharacterController) Bounds() physics.AABB {
	g := c.GetGameObject()
	size := rl.Vector3{X: c.Radius * 2, Y: c.height, Z: c.Radius * 2}
	return physics.NewAABBFromCenter(rl.Vector3Add(g.Transform.Position, c.center), size)
}

// Move moves the character by motion, resolving collisions horizontally first
// and then vertically. It returns the displacement actually applied and
// refreshes the grounded state.
func (c *CharacterController) Move(motion rl.Vector3) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}

	colliders := c.colliders(g)
	originalPos := g.Transform.Position
	landed := false

	horizontal := rl.Vector3{X: motion.X, Z: motion.Z}
	if horizontal.X != 0 || horizontal.Z != 0 {
		landed = c.moveWithCollision(g, horizontal, colliders) || landed
	}

	vertical := rl.Vector3{Y: motion.Y}
	if vertical.Y != 0 {
		landed = c.moveWithCollision(g, vertical, colliders) || landed
	}

	c.isGrounded = landed || (motion.Y <= 0 && c.groundWithinReach(colliders))

	return rl.Vector3Subtract(g.Transform.Position, originalPos)
}

func (c *CharacterController) colliders(g *engine.GameObject) []*BoxCollider {
	if g.Scene == nil {
		return nil
	}
	all := engine.FindComponents[*BoxCollider](g.Scene)
	result := all[:0]
	for _, col := range all {
		if col.GetGameObject() != g {
			result = append(result, col)
		}
	}
	return result
}

// moveWithCollision applies motion and pushes the body out of every overlapping
// collider. Returns true when it came to rest on top of ground.
func (c *CharacterController) moveWithCollision(g *engine.GameObject, motion rl.Vector3, colliders []*BoxCollider) bool {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
	landed := false

	for _, col := range colliders {
		charBox := c.Bounds()
		staticBox := col.GetAABB()
		if !charBox.Intersects(staticBox) {
			continue
		}

		pushOut := charBox.Resolve(staticBox)
		isHorizontalCollision := (pushOut.X != 0 || pushOut.Z != 0) && pushOut.Y == 0

		if isHorizontalCollision && motion.Y == 0 && c.tryStepUp(g, charBox, staticBox) {
			landed = landed || c.GroundCheckLayers.Contains(col.Layer)
			continue
		}

		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
		if pushOut.Y > 0 && c.GroundCheckLayers.Contains(col.Layer) {
			landed = true
		}
	}
	return landed
}

// tryStepUp lifts the body onto a collider whose top is within StepHeight of
// the feet, if the lifted box no longer overlaps it.
func (c *CharacterController) tryStepUp(g *engine.GameObject, charBox, staticBox physics.AABB) bool {
	step := staticBox.Max.Y - charBox.Min.Y
	if step <= 0 || step > c.StepHeight {
		return false
	}
	lift := rl.Vector3{Y: step + 0.01}
	if charBox.Translate(lift).Intersects(staticBox) {
		return false
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, lift)
	return true
}

func (c *CharacterController) groundWithinReach(colliders []*BoxCollider) bool {
	charBox := c.Bounds()
	for _, col := range colliders {
		if !c.GroundCheckLayers.Contains(col.Layer) {
			continue
		}
		if gap, ok := charBox.GroundGap(col.GetAABB()); ok && gap <= c.GroundCheckDistance {
			return true
		}
	}
	return false
}
