package query

import (
	"scenequery/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// closestOf runs the filter pipeline over a working set and keeps the single
// best candidate. Filters short-circuit in a fixed order: kind, ignore set,
// reference point, predicate, distance, line of sight. A strict distance
// improvement is required, so exact ties keep the earlier candidate in
// traversal order.
func (e *Engine) closestOf(
	origin rl.Vector3,
	working []*engine.GameObject,
	opts *ClosestOptions,
	match func(*engine.GameObject) bool,
	resolve func(*engine.GameObject) (rl.Vector3, bool),
) (*engine.GameObject, float32, bool) {
	var best *engine.GameObject
	bestDist := math32.Inf(1)
	if opts.MaxDistance > 0 {
		bestDist = opts.MaxDistance
	}

	for _, g := range working {
		if match != nil && !match(g) {
			continue
		}
		if inIgnoreSet(g, opts.Ignore) {
			continue
		}
		point, ok := resolve(g)
		if !ok {
			continue
		}
		if opts.Predicate != nil && !opts.Predicate(g) {
			continue
		}
		d := distance(origin, point)
		if d >= bestDist {
			continue
		}
		if opts.RequireLineOfSight && !e.visibleFrom(origin, point, g, opts.Ignore) {
			continue
		}
		best = g
		bestDist = d
	}

	if best == nil {
		return nil, 0, false
	}
	return best, bestDist, true
}

// visibleFrom tests line of sight to a candidate's reference point. The
// candidate itself joins the ignore set so its own geometry never counts as
// an obstruction.
func (e *Engine) visibleFrom(origin, point rl.Vector3, target *engine.GameObject, ignore []*engine.GameObject) bool {
	combined := make([]*engine.GameObject, 0, len(ignore)+1)
	combined = append(combined, ignore...)
	combined = append(combined, target)
	return e.HasLineOfSight(origin, point, &RayOptions{Ignore: combined})
}

// notifyClosest updates a family's previous-result slot and fires its change
// event with (new, old) when the identity moved. Runs on every completed
// query, found or not.
func notifyClosest(prev **engine.GameObject, ev *ChangeEvent, found *engine.GameObject) {
	if found == *prev {
		return
	}
	old := *prev
	*prev = found
	ev.Invoke(found, old)
}

// ClosestPart returns the part nearest to origin that passes all filters,
// with its distance. The third return is false when nothing qualifies.
func (e *Engine) ClosestPart(origin rl.Vector3, opts *ClosestOptions) (*engine.GameObject, float32, bool) {
	opts = opts.orDefaults()
	working := e.candidates(opts.Scope, opts.UseCache)

	found, dist, ok := e.closestOf(origin, working, opts,
		func(g *engine.GameObject) bool { return g.Kind == engine.KindPart },
		ownPosition)

	notifyClosest(&e.prevPart, &e.partChanged, found)
	return found, dist, ok
}

// ClosestModel returns the model nearest to origin. Model positions resolve
// through the fallback chain: PrimaryPart, collider-bounds center, mean of
// part positions. Models that resolve nothing are skipped.
func (e *Engine) ClosestModel(origin rl.Vector3, opts *ClosestOptions) (*engine.GameObject, float32, bool) {
	opts = opts.orDefaults()
	working := e.candidates(opts.Scope, opts.UseCache)

	found, dist, ok := e.closestOf(origin, working, opts,
		func(g *engine.GameObject) bool { return g.Kind == engine.KindModel },
		func(g *engine.GameObject) (rl.Vector3, bool) {
			return referencePoint(g, opts.RequirePrimaryPart)
		})

	notifyClosest(&e.prevModel, &e.modelChanged, found)
	return found, dist, ok
}

// ClosestModelWithPart measures each model by a directly named sub-part
// instead of its default reference point. A model missing that part falls
// back to default resolution, or is skipped when opts.NoFallback is set.
// Shares the model family's change tracking with ClosestModel.
func (e *Engine) ClosestModelWithPart(origin rl.Vector3, partName string, opts *ClosestOptions) (*engine.GameObject, float32, bool) {
	opts = opts.orDefaults()
	working := e.candidates(opts.Scope, opts.UseCache)
	named := namedPartPosition(partName)

	found, dist, ok := e.closestOf(origin, working, opts,
		func(g *engine.GameObject) bool { return g.Kind == engine.KindModel },
		func(g *engine.GameObject) (rl.Vector3, bool) {
			if point, ok := named(g); ok {
				return point, true
			}
			if opts.NoFallback {
				return rl.Vector3{}, false
			}
			return referencePoint(g, opts.RequirePrimaryPart)
		})

	notifyClosest(&e.prevModel, &e.modelChanged, found)
	return found, dist, ok
}

// ClosestTagged returns the nearest object carrying tag. The working set is
// the scene's global tag registry (in registration order), not the search
// scope; ignore, predicate, distance and visibility filters still apply.
// Change tracking is keyed per tag.
func (e *Engine) ClosestTagged(origin rl.Vector3, tag string, opts *ClosestOptions) (*engine.GameObject, float32, bool) {
	opts = opts.orDefaults()
	working := e.scene.FindByTag(tag)

	found, dist, ok := e.closestOf(origin, working, opts,
		nil,
		func(g *engine.GameObject) (rl.Vector3, bool) {
			return referencePoint(g, opts.RequirePrimaryPart)
		})

	if found != e.prevTagged[tag] {
		old := e.prevTagged[tag]
		e.prevTagged[tag] = found
		e.OnClosestTaggedChanged(tag).Invoke(found, old)
	}
	return found, dist, ok
}
