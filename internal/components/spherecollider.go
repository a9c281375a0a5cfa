package components

import (
	"scenequery/internal/engine"
	"scenequery/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3

	CanCollide bool
	Water      bool
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius:     radius,
		Offset:     rl.Vector3{},
		CanCollide: true,
	}
}

// GetCenter returns the world-space center of this collider.
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// GetWorldRadius returns the radius scaled by the largest world-scale axis.
func (s *SphereCollider) GetWorldRadius() float32 {
	scale := s.GetGameObject().WorldScale()
	m := math32.Max(math32.Abs(scale.X), math32.Max(math32.Abs(scale.Y), math32.Abs(scale.Z)))
	return s.Radius * m
}

func (s *SphereCollider) GetAABB() physics.AABB {
	r := s.GetWorldRadius()
	return physics.NewAABBFromCenter(s.GetCenter(), rl.Vector3{X: 2 * r, Y: 2 * r, Z: 2 * r})
}
