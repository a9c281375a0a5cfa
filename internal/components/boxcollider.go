package components

import (
	"scenequery/internal/engine"
	"scenequery/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3

	// CanCollide mirrors the owning part's solidity. Rays cast with
	// RespectCanCollide pass through colliders with CanCollide unset.
	CanCollide bool
	// Water marks the collider as a water surface; rays cast with
	// IgnoreWater pass through it.
	Water bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:       size,
		Offset:     rl.Vector3{},
		CanCollide: true,
	}
}

// GetCenter returns the world-space center of this collider.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns the collider size scaled by the object's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: b.Size.X * scale.X,
		Y: b.Size.Y * scale.Y,
		Z: b.Size.Z * scale.Z,
	}
}

func (b *BoxCollider) GetAABB() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}
