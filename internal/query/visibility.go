package query

import (
	"scenequery/internal/components"
	"scenequery/internal/engine"
	"scenequery/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// VisibilityTolerance is the slack allowed between a ray's hit distance and
// the straight-line distance to the target before the hit counts as an
// obstruction. Also the on-mesh tolerance for navigation checks.
const VisibilityTolerance = 0.1

// RaycastHit identifies the nearest object a ray struck.
type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast casts a ray against every collider in the scene and returns the
// closest hit. Obstruction is tested against the whole scene, not the search
// scope: scope constrains candidacy, not geometry. Objects in opts.Ignore
// (and their descendants) are skipped, as are water colliders under
// opts.IgnoreWater and non-solid ones under opts.RespectCanCollide.
func (e *Engine) Raycast(origin, direction rl.Vector3, opts *RayOptions) (RaycastHit, bool) {
	opts = opts.orDefaults()
	maxDistance := opts.MaxDistance
	if maxDistance <= 0 {
		maxDistance = DefaultRayLength
	}
	direction = rl.Vector3Normalize(direction)

	var closest RaycastHit
	closest.Distance = maxDistance
	hit := false

	for _, obj := range e.scene.Root.Descendants() {
		if inIgnoreSet(obj, opts.Ignore) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			if opts.IgnoreWater && box.Water {
				continue
			}
			if opts.RespectCanCollide && !box.CanCollide {
				continue
			}
			if h, ok := physics.RaycastAABB(origin, direction, box.GetAABB(), maxDistance); ok {
				if h.Distance < closest.Distance {
					closest = RaycastHit{GameObject: obj, Point: h.Point, Normal: h.Normal, Distance: h.Distance}
					hit = true
				}
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if opts.IgnoreWater && sphere.Water {
				continue
			}
			if opts.RespectCanCollide && !sphere.CanCollide {
				continue
			}
			if h, ok := physics.RaycastSphere(origin, direction, sphere.GetCenter(), sphere.GetWorldRadius(), maxDistance); ok {
				if h.Distance < closest.Distance {
					closest = RaycastHit{GameObject: obj, Point: h.Point, Normal: h.Normal, Distance: h.Distance}
					hit = true
				}
			}
		}
	}

	return closest, hit
}

// HasLineOfSight reports whether a straight, unobstructed path exists from
// from to to. A hit coinciding with the target point (within
// VisibilityTolerance) still counts as visible: the ray reached the target
// before anything else. opts.MaxDistance is ignored; the cast length comes
// from the endpoints.
func (e *Engine) HasLineOfSight(from, to rl.Vector3, opts *RayOptions) bool {
	opts = opts.orDefaults()
	dist := distance(from, to)
	if dist == 0 {
		return true
	}
	direction := rl.Vector3Scale(rl.Vector3Subtract(to, from), 1/dist)

	cast := *opts
	cast.MaxDistance = dist + VisibilityTolerance
	hit, ok := e.Raycast(from, direction, &cast)
	if !ok {
		return true
	}
	return math32.Abs(hit.Distance-dist) <= VisibilityTolerance
}
