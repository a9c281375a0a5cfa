// Loads a JSON scene and walks through every query family against it.
package main

import (
	"fmt"
	"os"

	"scenequery/internal/engine"
	"scenequery/internal/query"
	"scenequery/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	scenePath := "assets/scenes/demo.json"
	if len(os.Args) > 1 {
		scenePath = os.Args[1]
	}

	w := world.New()
	if err := w.LoadScene(scenePath); err != nil {
		fmt.Printf("Failed to load scene: %v\n", err)
		os.Exit(1)
	}
	defer w.Unload()

	origin := rl.Vector3{}
	fmt.Printf("Scene %q: %d objects under root\n\n", w.Scene.Name, len(w.Scene.Root.Descendants()))

	w.Query.OnClosestPartChanged().AddListener(func(current, previous *engine.GameObject) {
		fmt.Printf("  [event] closest part changed: %s -> %s\n", name(previous), name(current))
	})
	w.Query.OnClosestTaggedChanged("Target").AddListener(func(current, previous *engine.GameObject) {
		fmt.Printf("  [event] closest \"Target\" changed: %s -> %s\n", name(previous), name(current))
	})

	if part, dist, ok := w.Query.ClosestPart(origin, &query.ClosestOptions{UseCache: true}); ok {
		fmt.Printf("Closest part: %s at %.2f\n", part.Name, dist)
	} else {
		fmt.Println("Closest part: none")
	}

	if model, dist, ok := w.Query.ClosestModel(origin, &query.ClosestOptions{UseCache: true}); ok {
		fmt.Printf("Closest model: %s at %.2f\n", model.Name, dist)
	}

	if model, dist, ok := w.Query.ClosestModelWithPart(origin, "Head", nil); ok {
		fmt.Printf("Closest model by Head part: %s at %.2f\n", model.Name, dist)
	}

	if tagged, dist, ok := w.Query.ClosestTagged(origin, "Target", nil); ok {
		fmt.Printf("Closest \"Target\": %s at %.2f\n", tagged.Name, dist)
	}

	fmt.Println("\nParts within 15 units:")
	for _, part := range w.Query.PartsInRadius(origin, 15, nil) {
		fmt.Printf("  %s\n", part.Name)
	}

	fmt.Println("\nObjects matching \"cube\":")
	for _, obj := range w.Query.FindByNamePattern(nil, "cube", nil) {
		fmt.Printf("  %s (%s)\n", obj.Name, obj.Kind)
	}

	if visible, dist, ok := w.Query.ClosestPart(origin, &query.ClosestOptions{RequireLineOfSight: true}); ok {
		fmt.Printf("\nClosest visible part: %s at %.2f\n", visible.Name, dist)
	} else {
		fmt.Println("\nClosest visible part: none")
	}

	if point, ok := w.Query.NearestNavPoint(origin, 50); ok {
		fmt.Printf("Nearest nav point: (%.1f, %.1f, %.1f)\n", point.X, point.Y, point.Z)
		fmt.Printf("Origin on nav mesh: %v\n", w.Query.IsOnNavMesh(origin))
	}
}

func name(g *engine.GameObject) string {
	if g == nil {
		return "<none>"
	}
	return g.Name
}
