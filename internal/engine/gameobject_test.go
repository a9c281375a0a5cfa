package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewPart(t *testing.T) {
	obj := NewPart("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.Kind != KindPart {
		t.Errorf("Expected KindPart, got %v", obj.Kind)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestNewModel(t *testing.T) {
	obj := NewModel("Group")

	if obj.Kind != KindModel {
		t.Errorf("Expected KindModel, got %v", obj.Kind)
	}

	if obj.PrimaryPart != nil {
		t.Error("PrimaryPart should start nil")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewPart("First")
	obj2 := NewPart("Second")
	obj3 := NewModel("Third")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj2.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewPart("Test")
	obj.Tags = []string{"enemy", "ai", "dangerous"}

	if !obj.HasTag("enemy") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewPart("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewModel("Parent")
	child := NewPart("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	parent.RemoveChild(child)

	if child.Parent != nil {
		t.Error("Child.Parent should be cleared after removal")
	}

	if len(parent.Children) != 0 {
		t.Errorf("Expected 0 children after removal, got %d", len(parent.Children))
	}
}

func TestGameObjectIsDescendantOf(t *testing.T) {
	grandparent := NewModel("Grandparent")
	parent := NewModel("Parent")
	child := NewPart("Child")
	stranger := NewPart("Stranger")

	grandparent.AddChild(parent)
	parent.AddChild(child)

	if !child.IsDescendantOf(parent) {
		t.Error("Child should be a descendant of its parent")
	}

	if !child.IsDescendantOf(grandparent) {
		t.Error("Child should be a descendant of its grandparent")
	}

	if grandparent.IsDescendantOf(child) {
		t.Error("Ancestor is not a descendant of its child")
	}

	if child.IsDescendantOf(child) {
		t.Error("An object is not a descendant of itself")
	}

	if child.IsDescendantOf(stranger) {
		t.Error("Unrelated objects are not descendants")
	}

	if child.IsDescendantOf(nil) {
		t.Error("Nothing is a descendant of nil")
	}
}

func TestGameObjectDescendantsOrder(t *testing.T) {
	root := NewModel("Root")
	a := NewModel("A")
	b := NewPart("B")
	a1 := NewPart("A1")
	a2 := NewPart("A2")

	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)
	a.AddChild(a2)

	descendants := root.Descendants()
	expected := []*GameObject{a, a1, a2, b}

	if len(descendants) != len(expected) {
		t.Fatalf("Expected %d descendants, got %d", len(expected), len(descendants))
	}

	for i, want := range expected {
		if descendants[i] != want {
			t.Errorf("Descendant %d: expected %s, got %s", i, want.Name, descendants[i].Name)
		}
	}
}

func TestGameObjectFindFirstChild(t *testing.T) {
	root := NewModel("Root")
	direct := NewPart("Direct")
	nested := NewModel("Nested")
	deep := NewPart("Deep")

	root.AddChild(direct)
	root.AddChild(nested)
	nested.AddChild(deep)

	if root.FindFirstChild("Direct", false) != direct {
		t.Error("FindFirstChild should find a direct child")
	}

	if root.FindFirstChild("Deep", false) != nil {
		t.Error("Non-recursive FindFirstChild should not find nested children")
	}

	if root.FindFirstChild("Deep", true) != deep {
		t.Error("Recursive FindFirstChild should find nested children")
	}

	if root.FindFirstChild("Missing", true) != nil {
		t.Error("FindFirstChild should return nil for unknown names")
	}
}

func TestGameObjectWorldPosition(t *testing.T) {
	parent := NewModel("Parent")
	child := NewPart("Child")

	parent.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: 0}
	child.Transform.Position = rl.Vector3{X: 0, Y: 5, Z: 0}
	parent.AddChild(child)

	pos := child.WorldPosition()
	if pos.X != 10 || pos.Y != 5 || pos.Z != 0 {
		t.Errorf("Expected world position (10, 5, 0), got (%v, %v, %v)", pos.X, pos.Y, pos.Z)
	}
}

func TestGameObjectWorldScale(t *testing.T) {
	parent := NewModel("Parent")
	child := NewPart("Child")

	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	child.Transform.Scale = rl.Vector3{X: 3, Y: 1, Z: 1}
	parent.AddChild(child)

	scale := child.WorldScale()
	if scale.X != 6 || scale.Y != 2 || scale.Z != 2 {
		t.Errorf("Expected world scale (6, 2, 2), got (%v, %v, %v)", scale.X, scale.Y, scale.Z)
	}
}
