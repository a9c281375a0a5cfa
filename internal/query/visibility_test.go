package query

import (
	"testing"

	"scenequery/internal/components"
	"scenequery/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func colliderPartAt(name string, x, y, z float32, size rl.Vector3) *engine.GameObject {
	p := partAt(name, x, y, z)
	p.AddComponent(components.NewBoxCollider(size))
	return p
}

func cube(name string, x, y, z float32) *engine.GameObject {
	return colliderPartAt(name, x, y, z, rl.Vector3{X: 1, Y: 1, Z: 1})
}

func TestRaycastReturnsNearestHit(t *testing.T) {
	scene := engine.NewScene("Test")
	near := cube("Near", 5, 0, 0)
	far := cube("Far", 10, 0, 0)
	scene.AddGameObject(far)
	scene.AddGameObject(near)

	q := New(scene, nil)
	hit, ok := q.Raycast(rl.Vector3{}, rl.Vector3{X: 1, Y: 0, Z: 0}, nil)

	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.GameObject != near {
		t.Errorf("Expected nearest object, got %s", hit.GameObject.Name)
	}
	approx(t, hit.Distance, 4.5, "hit distance")
}

func TestRaycastIgnoreSet(t *testing.T) {
	scene := engine.NewScene("Test")
	near := cube("Near", 5, 0, 0)
	far := cube("Far", 10, 0, 0)
	scene.AddGameObject(near)
	scene.AddGameObject(far)

	q := New(scene, nil)
	hit, ok := q.Raycast(rl.Vector3{}, rl.Vector3{X: 1, Y: 0, Z: 0}, &RayOptions{
		Ignore: []*engine.GameObject{near},
	})

	if !ok || hit.GameObject != far {
		t.Errorf("Ignored object should be transparent to the ray, got %v", hit.GameObject)
	}
}

func TestRaycastIgnoreSetCoversDescendants(t *testing.T) {
	scene := engine.NewScene("Test")
	group := modelAt("Group", 0, 0, 0)
	inner := cube("Inner", 5, 0, 0)
	group.AddChild(inner)
	far := cube("Far", 10, 0, 0)
	scene.AddGameObject(group)
	scene.AddGameObject(far)

	q := New(scene, nil)
	hit, ok := q.Raycast(rl.Vector3{}, rl.Vector3{X: 1, Y: 0, Z: 0}, &RayOptions{
		Ignore: []*engine.GameObject{group},
	})

	if !ok || hit.GameObject != far {
		t.Errorf("Descendants of ignored objects should be transparent, got %v", hit.GameObject)
	}
}

func TestRaycastIgnoreWater(t *testing.T) {
	scene := engine.NewScene("Test")
	pond := cube("Pond", 5, 0, 0)
	engine.GetComponent[*components.BoxCollider](pond).Water = true
	shore := cube("Shore", 10, 0, 0)
	scene.AddGameObject(pond)
	scene.AddGameObject(shore)

	q := New(scene, nil)

	hit, ok := q.Raycast(rl.Vector3{}, rl.Vector3{X: 1, Y: 0, Z: 0}, nil)
	if !ok || hit.GameObject != pond {
		t.Fatalf("Without IgnoreWater the pond blocks, got %v", hit.GameObject)
	}

	hit, ok = q.Raycast(rl.Vector3{}, rl.Vector3{X: 1, Y: 0, Z: 0}, &RayOptions{IgnoreWater: true})
	if !ok || hit.GameObject != shore {
		t.Errorf("IgnoreWater should pass through the pond, got %v", hit.GameObject)
	}
}

func TestRaycastRespectCanCollide(t *testing.T) {
	scene := engine.NewScene("Test")
	ghost := cube("Ghost", 5, 0, 0)
	engine.GetComponent[*components.BoxCollider](ghost).CanCollide = false
	wall := cube("Wall", 10, 0, 0)
	scene.AddGameObject(ghost)
	scene.AddGameObject(wall)

	q := New(scene, nil)

	hit, ok := q.Raycast(rl.Vector3{}, rl.Vector3{X: 1, Y: 0, Z: 0}, nil)
	if !ok || hit.GameObject != ghost {
		t.Fatalf("By default non-solid colliders still block rays, got %v", hit.GameObject)
	}

	hit, ok = q.Raycast(rl.Vector3{}, rl.Vector3{X: 1, Y: 0, Z: 0}, &RayOptions{RespectCanCollide: true})
	if !ok || hit.GameObject != wall {
		t.Errorf("RespectCanCollide should pass through non-solid colliders, got %v", hit.GameObject)
	}
}

func TestRaycastSphereColliders(t *testing.T) {
	scene := engine.NewScene("Test")
	orb := partAt("Orb", 5, 0, 0)
	orb.AddComponent(components.NewSphereCollider(1))
	scene.AddGameObject(orb)

	q := New(scene, nil)
	hit, ok := q.Raycast(rl.Vector3{}, rl.Vector3{X: 1, Y: 0, Z: 0}, nil)

	if !ok || hit.GameObject != orb {
		t.Fatal("Expected to hit the sphere")
	}
	approx(t, hit.Distance, 4, "sphere hit distance")
}

func TestRaycastMiss(t *testing.T) {
	scene := engine.NewScene("Test")
	scene.AddGameObject(cube("Off", 0, 10, 0))

	q := New(scene, nil)
	if _, ok := q.Raycast(rl.Vector3{}, rl.Vector3{X: 1, Y: 0, Z: 0}, nil); ok {
		t.Error("Ray pointing away from everything should miss")
	}
}

func TestHasLineOfSightClear(t *testing.T) {
	scene := engine.NewScene("Test")
	q := New(scene, nil)

	if !q.HasLineOfSight(rl.Vector3{}, rl.Vector3{X: 10, Y: 0, Z: 0}, nil) {
		t.Error("Empty scene should have line of sight everywhere")
	}
}

func TestHasLineOfSightBlocked(t *testing.T) {
	scene := engine.NewScene("Test")
	scene.AddGameObject(colliderPartAt("Wall", 5, 0, 0, rl.Vector3{X: 1, Y: 4, Z: 4}))

	q := New(scene, nil)
	if q.HasLineOfSight(rl.Vector3{}, rl.Vector3{X: 10, Y: 0, Z: 0}, nil) {
		t.Error("An obstruction at the midpoint should break line of sight")
	}
}

func TestHasLineOfSightHitCoincidesWithTarget(t *testing.T) {
	scene := engine.NewScene("Test")
	scene.AddGameObject(colliderPartAt("Wall", 5, 0, 0, rl.Vector3{X: 1, Y: 4, Z: 4}))

	q := New(scene, nil)

	// Target point sits on the wall's near face: the ray reaches it exactly
	// when it hits, so visibility holds.
	if !q.HasLineOfSight(rl.Vector3{}, rl.Vector3{X: 4.5, Y: 0, Z: 0}, nil) {
		t.Error("A hit coinciding with the target counts as visible")
	}
}

func TestHasLineOfSightIgnoreList(t *testing.T) {
	scene := engine.NewScene("Test")
	wall := colliderPartAt("Wall", 5, 0, 0, rl.Vector3{X: 1, Y: 4, Z: 4})
	scene.AddGameObject(wall)

	q := New(scene, nil)
	visible := q.HasLineOfSight(rl.Vector3{}, rl.Vector3{X: 10, Y: 0, Z: 0}, &RayOptions{
		Ignore: []*engine.GameObject{wall},
	})

	if !visible {
		t.Error("Ignored obstructions should not break line of sight")
	}
}

func TestClosestPartRequireLineOfSight(t *testing.T) {
	scene := engine.NewScene("Test")
	wall := colliderPartAt("Wall", 1.5, 0, 0, rl.Vector3{X: 1, Y: 6, Z: 6})
	hidden := cube("Hidden", 4, 0, 0)
	visible := cube("Visible", 0, 6, 0)
	scene.AddGameObject(wall)
	scene.AddGameObject(hidden)
	scene.AddGameObject(visible)

	q := New(scene, nil)

	// Without the visibility filter the hidden part wins on distance
	// (the wall itself is even closer).
	found, _, ok := q.ClosestPart(rl.Vector3{}, &ClosestOptions{
		Ignore: []*engine.GameObject{wall},
	})
	if !ok || found != hidden {
		t.Fatalf("Expected Hidden without visibility filter, got %v", found)
	}

	// With it, only the unobstructed part qualifies. The wall stays in the
	// candidate ignore set but still obstructs rays.
	found, dist, ok := q.ClosestPart(rl.Vector3{}, &ClosestOptions{
		RequireLineOfSight: true,
		Predicate:          func(g *engine.GameObject) bool { return g != wall },
	})
	if !ok || found != visible {
		t.Fatalf("Expected Visible with visibility filter, got %v", found)
	}
	approx(t, dist, 6, "visible part distance")
}
