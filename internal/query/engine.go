// Package query implements distance, tag, name and visibility queries over a
// scene's object tree. Every query is a linear scan of the scope's
// descendants; there is no spatial index. Callers that query the same scope
// repeatedly can opt into a cached descendant list and invalidate it when the
// scene changes.
package query

import (
	"scenequery/internal/engine"
	"scenequery/internal/nav"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ChangeEvent carries (new, old) closest-object identities.
type ChangeEvent = engine.EventWith2Args[*engine.GameObject, *engine.GameObject]

// Engine answers queries against one scene. It owns a mutable scope handle,
// a lazily built descendant cache and the last result of each closest-query
// family for change notification.
//
// An Engine is single-threaded: its state is not safe for concurrent use
// without external synchronization. Change listeners run in-line before the
// triggering query returns; a listener that re-enters the same Engine is
// unsupported.
type Engine struct {
	scene *engine.Scene
	scope *engine.GameObject
	cache []*engine.GameObject

	prevPart   *engine.GameObject
	prevModel  *engine.GameObject
	prevTagged map[string]*engine.GameObject
	prevNamed  map[string]*engine.GameObject

	partChanged   ChangeEvent
	modelChanged  ChangeEvent
	taggedChanged map[string]*ChangeEvent
	nameChanged   map[string]*ChangeEvent

	navigator nav.Provider
}

// New creates an Engine scanning below scope. A nil scope means the whole
// scene (its root object).
func New(scene *engine.Scene, scope *engine.GameObject) *Engine {
	if scope == nil {
		scope = scene.Root
	}
	return &Engine{
		scene:         scene,
		scope:         scope,
		prevTagged:    make(map[string]*engine.GameObject),
		prevNamed:     make(map[string]*engine.GameObject),
		taggedChanged: make(map[string]*ChangeEvent),
		nameChanged:   make(map[string]*ChangeEvent),
	}
}

// Scope returns the current search scope.
func (e *Engine) Scope() *engine.GameObject {
	return e.scope
}

// SetScope replaces the search scope. Changing to a different object drops
// the descendant cache; setting the same scope again keeps it.
func (e *Engine) SetScope(scope *engine.GameObject) {
	if scope == nil {
		scope = e.scene.Root
	}
	if scope != e.scope {
		e.scope = scope
		e.cache = nil
	}
}

// InvalidateCache drops the cached descendant list unconditionally.
func (e *Engine) InvalidateCache() {
	e.cache = nil
}

// Descendants returns the scope's descendant list, building it on first use
// or when forceRefresh is set. The returned slice is the cache itself;
// callers must not mutate it.
func (e *Engine) Descendants(forceRefresh bool) []*engine.GameObject {
	if e.cache == nil || forceRefresh {
		e.cache = e.scope.Descendants()
	}
	return e.cache
}

// candidates resolves a call's working set. The engine cache serves only
// calls that run against the engine's own scope and opt in; any other
// combination enumerates fresh and is never written back.
func (e *Engine) candidates(override *engine.GameObject, useCache bool) []*engine.GameObject {
	scope := override
	if scope == nil {
		scope = e.scope
	}
	if scope == e.scope && useCache {
		return e.Descendants(false)
	}
	return scope.Descendants()
}

// SetNavigator installs the navigation provider used by NearestNavPoint and
// IsOnNavMesh. A nil provider makes both report not-found.
func (e *Engine) SetNavigator(p nav.Provider) {
	e.navigator = p
}

// NearestNavPoint returns the closest navigable point to pos within
// maxDistance. Provider failures surface as not-found, never as a fault.
func (e *Engine) NearestNavPoint(pos rl.Vector3, maxDistance float32) (rl.Vector3, bool) {
	if e.navigator == nil {
		return rl.Vector3{}, false
	}
	return e.navigator.NearestPoint(pos, maxDistance)
}

// IsOnNavMesh reports whether pos lies on the navigation mesh, within the
// same tolerance the visibility test uses.
func (e *Engine) IsOnNavMesh(pos rl.Vector3) bool {
	point, ok := e.NearestNavPoint(pos, VisibilityTolerance)
	if !ok {
		return false
	}
	return distance(pos, point) <= VisibilityTolerance
}

// OnClosestPartChanged fires when ClosestPart settles on a different object
// than the previous call, with (new, old) identities. Either may be nil.
func (e *Engine) OnClosestPartChanged() *ChangeEvent {
	return &e.partChanged
}

// OnClosestModelChanged is the model-family counterpart of
// OnClosestPartChanged. ClosestModel and ClosestModelWithPart share it.
func (e *Engine) OnClosestModelChanged() *ChangeEvent {
	return &e.modelChanged
}

// OnClosestTaggedChanged returns the change event for one tag, creating it
// on first use.
func (e *Engine) OnClosestTaggedChanged(tag string) *ChangeEvent {
	ev, ok := e.taggedChanged[tag]
	if !ok {
		ev = &ChangeEvent{}
		e.taggedChanged[tag] = ev
	}
	return ev
}

// OnNameMatchChanged returns the change event for one pattern, creating it
// on first use. It fires when FindByNamePattern with a TrackOrigin settles
// on a different closest match.
func (e *Engine) OnNameMatchChanged(pattern string) *ChangeEvent {
	ev, ok := e.nameChanged[pattern]
	if !ok {
		ev = &ChangeEvent{}
		e.nameChanged[pattern] = ev
	}
	return ev
}

// Close disconnects every listener and releases all cached and
// previous-result state. The Engine remains usable afterwards; tracking
// starts over.
func (e *Engine) Close() {
	e.partChanged.RemoveAllListeners()
	e.modelChanged.RemoveAllListeners()
	for _, ev := range e.taggedChanged {
		ev.RemoveAllListeners()
	}
	for _, ev := range e.nameChanged {
		ev.RemoveAllListeners()
	}
	e.taggedChanged = make(map[string]*ChangeEvent)
	e.nameChanged = make(map[string]*ChangeEvent)
	e.prevPart = nil
	e.prevModel = nil
	e.prevTagged = make(map[string]*engine.GameObject)
	e.prevNamed = make(map[string]*engine.GameObject)
	e.cache = nil
}
