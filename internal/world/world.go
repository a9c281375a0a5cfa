package world

import (
	"scenequery/internal/engine"
	"scenequery/internal/nav"
	"scenequery/internal/query"
)

// World ties a scene, its query engine and its navigation data together.
// Structural edits going through World keep the query engine's descendant
// cache honest; edits made directly on the scene tree require the caller to
// invalidate the cache themselves.
type World struct {
	Scene *engine.Scene
	Query *query.Engine
	Nav   *nav.VolumeMesh
}

func New() *World {
	scene := engine.NewScene("Main")
	w := &World{
		Scene: scene,
		Nav:   nav.NewVolumeMesh(),
	}
	w.Query = query.New(scene, nil)
	w.Query.SetNavigator(w.Nav)
	return w
}

// Spawn adds a top-level object and invalidates the query cache.
func (w *World) Spawn(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Query.InvalidateCache()
}

// Destroy detaches an object from its parent and invalidates the query
// cache. Objects without a parent are ignored.
func (w *World) Destroy(g *engine.GameObject) {
	if g.Parent == nil {
		return
	}
	g.Parent.RemoveChild(g)
	w.Query.InvalidateCache()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Unload tears down query listeners and state.
func (w *World) Unload() {
	w.Query.Close()
}
