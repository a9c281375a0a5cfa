package query

import (
	"sort"

	"scenequery/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type rankedObject struct {
	object *engine.GameObject
	dist   float32
}

// inRadiusOf collects every candidate within radius (inclusive) passing the
// filter pipeline. Results sort ascending by distance unless opts.Unsorted;
// the sort is stable, so exact ties stay in traversal order. MaxResults
// truncates after sorting, keeping the smallest distances.
func (e *Engine) inRadiusOf(
	origin rl.Vector3,
	radius float32,
	working []*engine.GameObject,
	opts *RadiusOptions,
	match func(*engine.GameObject) bool,
	resolve func(*engine.GameObject) (rl.Vector3, bool),
) []*engine.GameObject {
	var ranked []rankedObject

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
		if d > radius {
			continue
		}
		if opts.RequireLineOfSight && !e.visibleFrom(origin, point, g, opts.Ignore) {
			continue
		}
		ranked = append(ranked, rankedObject{object: g, dist: d})
	}

	if !opts.Unsorted {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].dist < ranked[j].dist
		})
	}
	if opts.MaxResults > 0 && len(ranked) > opts.MaxResults {
		ranked = ranked[:opts.MaxResults]
	}

	result := make([]*engine.GameObject, len(ranked))
	for i, r := range ranked {
		result[i] = r.object
	}
	return result
}

// PartsInRadius returns every part within radius of origin.
func (e *Engine) PartsInRadius(origin rl.Vector3, radius float32, opts *RadiusOptions) []*engine.GameObject {
	opts = opts.orDefaults()
	working := e.candidates(opts.Scope, opts.UseCache)

	return e.inRadiusOf(origin, radius, working, opts,
		func(g *engine.GameObject) bool { return g.Kind == engine.KindPart },
		ownPosition)
}

// ModelsInRadius returns every model within radius of origin, positions
// resolved through the model fallback chain.
func (e *Engine) ModelsInRadius(origin rl.Vector3, radius float32, opts *RadiusOptions) []*engine.GameObject {
	opts = opts.orDefaults()
	working := e.candidates(opts.Scope, opts.UseCache)

	return e.inRadiusOf(origin, radius, working, opts,
		func(g *engine.GameObject) bool { return g.Kind == engine.KindModel },
		func(g *engine.GameObject) (rl.Vector3, bool) {
			return referencePoint(g, false)
		})
}

// TaggedInRadius returns every object carrying tag within radius of origin.
// Like ClosestTagged, the working set is the scene's global tag registry.
func (e *Engine) TaggedInRadius(origin rl.Vector3, radius float32, tag string, opts *RadiusOptions) []*engine.GameObject {
	opts = opts.orDefaults()
	working := e.scene.FindByTag(tag)

	return e.inRadiusOf(origin, radius, working, opts,
		nil,
		func(g *engine.GameObject) (rl.Vector3, bool) {
			return referencePoint(g, false)
		})
}
