package query

import (
	"strings"

	"scenequery/internal/engine"

	"github.com/chewxy/math32"
)

// nameWorkingSet picks the candidate list for a name search: the parent's
// direct children, or its full descendant set (through the shared cache when
// the parent is the engine's scope).
func (e *Engine) nameWorkingSet(parent *engine.GameObject, opts *NameOptions) []*engine.GameObject {
	if parent == nil {
		parent = e.scope
	}
	if opts.DirectOnly {
		return parent.Children
	}
	if parent == e.scope && opts.UseCache {
		return e.Descendants(false)
	}
	return parent.Descendants()
}

// FindObjectsByName returns objects below parent whose name equals name
// exactly, in traversal order, capped at opts.MaxResults. A nil parent
// searches the engine's scope.
func (e *Engine) FindObjectsByName(parent *engine.GameObject, name string, opts *NameOptions) []*engine.GameObject {
	opts = opts.orDefaults()

	var result []*engine.GameObject
	for _, g := range e.nameWorkingSet(parent, opts) {
		if g.Name != name {
			continue
		}
		result = append(result, g)
		if opts.MaxResults > 0 && len(result) >= opts.MaxResults {
			break
		}
	}
	return result
}

// FindByNamePattern returns objects below parent whose name contains
// pattern, in traversal order, capped at opts.MaxResults. Matching is
// case-insensitive unless opts.CaseSensitive.
//
// With opts.TrackOrigin set, the call additionally finds the match closest
// to that point (parts by their own position, models by PrimaryPart only —
// models without one are skipped for this sub-step) and fires the change
// event keyed by the pattern text when that closest identity moved.
func (e *Engine) FindByNamePattern(parent *engine.GameObject, pattern string, opts *NameOptions) []*engine.GameObject {
	opts = opts.orDefaults()

	needle := pattern
	if !opts.CaseSensitive {
		needle = strings.ToLower(pattern)
	}

	var result []*engine.GameObject
	for _, g := range e.nameWorkingSet(parent, opts) {
		name := g.Name
		if !opts.CaseSensitive {
			name = strings.ToLower(name)
		}
		if !strings.Contains(name, needle) {
			continue
		}
		result = append(result, g)
		if opts.MaxResults > 0 && len(result) >= opts.MaxResults {
			break
		}
	}

	if opts.TrackOrigin != nil {
		e.trackClosestNameMatch(pattern, result, opts)
	}
	return result
}

func (e *Engine) trackClosestNameMatch(pattern string, matches []*engine.GameObject, opts *NameOptions) {
	var closest *engine.GameObject
	bestDist := math32.Inf(1)

	for _, g := range matches {
		point, ok := referencePoint(g, true)
		if !ok {
			continue
		}
		d := distance(*opts.TrackOrigin, point)
		if d < bestDist {
			closest = g
			bestDist = d
		}
	}

	if closest != e.prevNamed[pattern] {
		old := e.prevNamed[pattern]
		e.prevNamed[pattern] = closest
		e.OnNameMatchChanged(pattern).Invoke(closest, old)
	}
}
