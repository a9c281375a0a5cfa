package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// ObjectKind classifies a GameObject for query purposes.
type ObjectKind int

const (
	// KindPart is an indivisible geometric object with its own position.
	KindPart ObjectKind = iota
	// KindModel is a grouping of parts. Its reference point is derived from
	// its PrimaryPart, or from its parts' bounds when no PrimaryPart is set.
	KindModel
)

func (k ObjectKind) String() string {
	if k == KindModel {
		return "Model"
	}
	return "Part"
}

var uidCounter uint64

type GameObject struct {
	UID  uint64
	Name string
	Kind ObjectKind
	Tags []string

	Transform Transform
	Active    bool

	Scene    *Scene
	Parent   *GameObject
	Children []*GameObject

	// PrimaryPart designates the part that stands in for a model's position.
	// Only meaningful on KindModel objects.
	PrimaryPart *GameObject

	components []Component
	started    bool
}

func newGameObject(name string, kind ObjectKind) *GameObject {
	return &GameObject{
		UID:    atomic.AddUint64(&uidCounter, 1),
		Name:   name,
		Kind:   kind,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

// NewPart creates a leaf geometric object.
func NewPart(name string) *GameObject {
	return newGameObject(name, KindPart)
}

// NewModel creates a grouping object.
func NewModel(name string) *GameObject {
	return newGameObject(name, KindModel)
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or T's zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
	for _, child := range g.Children {
		child.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
	for _, child := range g.Children {
		child.Update(deltaTime)
	}
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag tags the object and registers it in the scene's tag registry.
func (g *GameObject) AddTag(tag string) {
	if g.HasTag(tag) {
		return
	}
	g.Tags = append(g.Tags, tag)
	if g.Scene != nil {
		g.Scene.registerTag(tag, g)
	}
}

// RemoveTag untags the object and removes it from the scene's tag registry.
func (g *GameObject) RemoveTag(tag string) {
	for i, t := range g.Tags {
		if t == tag {
			g.Tags = append(g.Tags[:i], g.Tags[i+1:]...)
			if g.Scene != nil {
				g.Scene.unregisterTag(tag, g)
			}
			return
		}
	}
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
	if g.Scene != nil {
		g.Scene.register(child)
	}
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			if g.Scene != nil {
				g.Scene.unregister(child)
			}
			return
		}
	}
}

// IsDescendantOf reports whether g sits anywhere below ancestor.
// An object is not a descendant of itself.
func (g *GameObject) IsDescendantOf(ancestor *GameObject) bool {
	if ancestor == nil {
		return false
	}
	for p := g.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Descendants returns every object below g in pre-order depth-first order:
// each parent before its children, children in AddChild order. This is the
// traversal order all queries see, and therefore the tie-break order for
// equal distances.
func (g *GameObject) Descendants() []*GameObject {
	var result []*GameObject
	g.appendDescendants(&result)
	return result
}

func (g *GameObject) appendDescendants(out *[]*GameObject) {
	for _, child := range g.Children {
		*out = append(*out, child)
		child.appendDescendants(out)
	}
}

// FindFirstChild returns the first child named name, in Children order.
// With recursive set, the whole subtree is searched in Descendants order.
func (g *GameObject) FindFirstChild(name string, recursive bool) *GameObject {
	for _, child := range g.Children {
		if child.Name == name {
			return child
		}
	}
	if recursive {
		for _, child := range g.Children {
			if found := child.FindFirstChild(name, true); found != nil {
				return found
			}
		}
	}
	return nil
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	// Rotate by parent rotation (X then Y then Z)
	rx := float64(parentRot.X) * math.Pi / 180
	ry := float64(parentRot.Y) * math.Pi / 180
	rz := float64(parentRot.Z) * math.Pi / 180
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	rotated := rl.Vector3Transform(scaled, rotMatrix)
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
