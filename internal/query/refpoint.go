package query

import (
	"scenequery/internal/components"
	"scenequery/internal/engine"
	"scenequery/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func distance(a, b rl.Vector3) float32 {
	return physics.Distance(a, b)
}

// A refStrategy attempts to produce a world-space reference point for an
// object. Strategies are tried in order; a false return means "can't
// resolve, try the next one". Host-level failures (an object with no
// resolvable geometry) surface the same way and never abort a query.
type refStrategy func(g *engine.GameObject) (rl.Vector3, bool)

func ownPosition(g *engine.GameObject) (rl.Vector3, bool) {
	return g.WorldPosition(), true
}

func primaryPartPosition(g *engine.GameObject) (rl.Vector3, bool) {
	if g.PrimaryPart == nil {
		return rl.Vector3{}, false
	}
	return g.PrimaryPart.WorldPosition(), true
}

// boundsCenter derives a model's position from the union of its parts'
// collider bounds.
func boundsCenter(g *engine.GameObject) (rl.Vector3, bool) {
	var bounds physics.AABB
	found := false
	for _, desc := range g.Descendants() {
		box := colliderAABB(desc)
		if box == nil {
			continue
		}
		if !found {
			bounds = *box
			found = true
		} else {
			bounds = bounds.Union(*box)
		}
	}
	if !found {
		return rl.Vector3{}, false
	}
	return bounds.Center(), true
}

func colliderAABB(g *engine.GameObject) *physics.AABB {
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		a := box.GetAABB()
		return &a
	}
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		a := sphere.GetAABB()
		return &a
	}
	return nil
}

// meanPartPosition averages the world positions of all part descendants.
// Last resort for models with no colliders at all.
func meanPartPosition(g *engine.GameObject) (rl.Vector3, bool) {
	var sum rl.Vector3
	count := 0
	for _, desc := range g.Descendants() {
		if desc.Kind != engine.KindPart {
			continue
		}
		sum = rl.Vector3Add(sum, desc.WorldPosition())
		count++
	}
	if count == 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Scale(sum, 1/float32(count)), true
}

// namedPartPosition resolves via a directly named sub-part.
func namedPartPosition(name string) refStrategy {
	return func(g *engine.GameObject) (rl.Vector3, bool) {
		part := g.FindFirstChild(name, false)
		if part == nil {
			return rl.Vector3{}, false
		}
		return part.WorldPosition(), true
	}
}

var modelChain = []refStrategy{primaryPartPosition, boundsCenter, meanPartPosition}

// resolveChain runs strategies in order until one yields a point.
func resolveChain(g *engine.GameObject, chain []refStrategy) (rl.Vector3, bool) {
	for _, strategy := range chain {
		if point, ok := strategy(g); ok {
			return point, true
		}
	}
	return rl.Vector3{}, false
}

// referencePoint resolves any object's reference point: parts use their own
// position, models walk the fallback chain. An unresolvable object is
// skipped by the caller, never an error.
func referencePoint(g *engine.GameObject, requirePrimary bool) (rl.Vector3, bool) {
	if g.Kind == engine.KindPart {
		return ownPosition(g)
	}
	if requirePrimary {
		return primaryPartPosition(g)
	}
	return resolveChain(g, modelChain)
}
