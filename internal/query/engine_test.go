package query

import (
	"testing"

	"scenequery/internal/engine"
	"scenequery/internal/nav"
	"scenequery/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewDefaultsToSceneRoot(t *testing.T) {
	scene := engine.NewScene("Test")
	q := New(scene, nil)

	if q.Scope() != scene.Root {
		t.Error("Nil scope should default to the scene root")
	}
}

func TestDescendantsForceRefresh(t *testing.T) {
	scene := engine.NewScene("Test")
	scene.AddGameObject(partAt("A", 0, 0, 0))

	q := New(scene, nil)
	if got := len(q.Descendants(false)); got != 1 {
		t.Fatalf("Expected 1 descendant, got %d", got)
	}

	scene.AddGameObject(partAt("B", 0, 0, 0))

	if got := len(q.Descendants(false)); got != 1 {
		t.Errorf("Cached list should be reused, got %d", got)
	}
	if got := len(q.Descendants(true)); got != 2 {
		t.Errorf("Force refresh should repopulate, got %d", got)
	}
}

func TestCloseResetsTracking(t *testing.T) {
	scene := engine.NewScene("Test")
	p := partAt("P", 1, 0, 0)
	scene.AddGameObject(p)

	q := New(scene, nil)
	fired := 0
	q.OnClosestPartChanged().AddListener(func(current, previous *engine.GameObject) { fired++ })

	q.ClosestPart(rl.Vector3{}, nil)
	if fired != 1 {
		t.Fatalf("Expected 1 notification before Close, got %d", fired)
	}

	q.Close()

	// Old listeners are disconnected, previous-result state is gone.
	q.ClosestPart(rl.Vector3{}, nil)
	if fired != 1 {
		t.Errorf("Disconnected listener must not fire, got %d", fired)
	}

	refired := 0
	var gotOld *engine.GameObject = p
	q.OnClosestPartChanged().AddListener(func(current, previous *engine.GameObject) {
		refired++
		gotOld = previous
	})
	q.ClosestPart(rl.Vector3{}, nil)
	if refired != 1 {
		t.Errorf("Tracking should restart after Close, got %d", refired)
	}
	if gotOld != nil {
		t.Error("After Close the stored previous identity is none again")
	}
}

func TestNearestNavPointWithoutProvider(t *testing.T) {
	scene := engine.NewScene("Test")
	q := New(scene, nil)

	if _, ok := q.NearestNavPoint(rl.Vector3{}, 100); ok {
		t.Error("No provider should report not-found, never a fault")
	}
	if q.IsOnNavMesh(rl.Vector3{}) {
		t.Error("No provider means nothing is on the mesh")
	}
}

func TestNavWrappers(t *testing.T) {
	scene := engine.NewScene("Test")
	q := New(scene, nil)

	mesh := nav.NewVolumeMesh(physics.AABB{
		Min: rl.Vector3{X: -10, Y: 0, Z: -10},
		Max: rl.Vector3{X: 10, Y: 0, Z: 10},
	})
	q.SetNavigator(mesh)

	point, ok := q.NearestNavPoint(rl.Vector3{X: 0, Y: 5, Z: 0}, 10)
	if !ok {
		t.Fatal("Expected a nav point within range")
	}
	if point.Y != 0 {
		t.Errorf("Expected clamp onto the walkable plane, got Y=%v", point.Y)
	}

	if _, ok := q.NearestNavPoint(rl.Vector3{X: 0, Y: 50, Z: 0}, 10); ok {
		t.Error("Nav point beyond the bound should be not-found")
	}

	if !q.IsOnNavMesh(rl.Vector3{X: 3, Y: 0.05, Z: 3}) {
		t.Error("Point within tolerance of the mesh is on it")
	}
	if q.IsOnNavMesh(rl.Vector3{X: 3, Y: 1, Z: 3}) {
		t.Error("Point a full unit off the mesh is not on it")
	}
}
