// Stress test measuring how the linear-scan queries scale with scene size,
// cached vs uncached descendant lists.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"scenequery/internal/components"
	"scenequery/internal/engine"
	"scenequery/internal/query"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	testCounts := []int{100, 500, 1000, 2000, 5000, 10000, 20000}

	for _, count := range testCounts {
		testScan(count)
	}
}

func testScan(count int) {
	scene := buildScene(count)
	q := query.New(scene, nil)
	origin := rl.Vector3{}

	const iterations = 100

	start := time.Now()
	for range iterations {
		q.ClosestPart(origin, nil)
	}
	uncached := time.Since(start)

	start = time.Now()
	for range iterations {
		q.ClosestPart(origin, &query.ClosestOptions{UseCache: true})
	}
	cached := time.Since(start)

	start = time.Now()
	for range iterations {
		q.PartsInRadius(origin, 25, &query.RadiusOptions{UseCache: true})
	}
	radius := time.Since(start)

	fmt.Printf("%6d objects: closest %8s uncached / %8s cached, radius %8s (%d iterations)\n",
		count, uncached, cached, radius, iterations)
}

func buildScene(count int) *engine.Scene {
	scene := engine.NewScene("Stress")
	rng := rand.New(rand.NewSource(42)) // Consistent results

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(50.0) + float32(count)/100.0

	for i := range count {
		part := engine.NewPart(fmt.Sprintf("Part_%d", i))
		part.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		part.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
		scene.AddGameObject(part)
	}

	return scene
}
