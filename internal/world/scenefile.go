package world

import (
	"encoding/json"
	"fmt"
	"os"

	"scenequery/internal/components"
	"scenequery/internal/engine"
	"scenequery/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects    []ObjectDef `json:"objects"`
	NavVolumes []VolumeDef `json:"navVolumes,omitempty"`
}

type ObjectDef struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind,omitempty"` // "Part" (default) or "Model"
	Tags     []string   `json:"tags,omitempty"`
	Position [3]float32 `json:"position"`
	Rotation [3]float32 `json:"rotation,omitempty"`
	Scale    [3]float32 `json:"scale,omitempty"`
	// PrimaryPart names a direct child that stands in for a model's position.
	PrimaryPart string            `json:"primaryPart,omitempty"`
	Children    []ObjectDef       `json:"children,omitempty"`
	Components  []json.RawMessage `json:"components,omitempty"`
}

type VolumeDef struct {
	Min [3]float32 `json:"min"`
	Max [3]float32 `json:"max"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type boxColliderDef struct {
	Type       string     `json:"type"`
	Size       [3]float32 `json:"size"`
	Offset     [3]float32 `json:"offset,omitempty"`
	CanCollide *bool      `json:"canCollide,omitempty"`
	Water      bool       `json:"water,omitempty"`
}

type sphereColliderDef struct {
	Type       string     `json:"type"`
	Radius     float32    `json:"radius"`
	Offset     [3]float32 `json:"offset,omitempty"`
	CanCollide *bool      `json:"canCollide,omitempty"`
	Water      bool       `json:"water,omitempty"`
}

// --- Loading ---

// LoadScene populates the world from a JSON scene description. Malformed
// component entries are skipped; a malformed file is an error.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	for _, objDef := range sf.Objects {
		w.Scene.AddGameObject(buildObject(objDef))
	}

	for _, volDef := range sf.NavVolumes {
		w.Nav.AddVolume(physics.AABB{
			Min: vec3(volDef.Min),
			Max: vec3(volDef.Max),
		})
	}

	w.Query.InvalidateCache()
	return nil
}

func buildObject(def ObjectDef) *engine.GameObject {
	var g *engine.GameObject
	if def.Kind == "Model" {
		g = engine.NewModel(def.Name)
	} else {
		g = engine.NewPart(def.Name)
	}

	g.Tags = def.Tags
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = vec3(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = vec3(def.Scale)
	}

	for _, raw := range def.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			continue
		}
		switch header.Type {
		case "BoxCollider":
			loadBoxCollider(g, raw)
		case "SphereCollider":
			loadSphereCollider(g, raw)
		}
	}

	for _, childDef := range def.Children {
		g.AddChild(buildObject(childDef))
	}

	// Resolve after children exist; a dangling name leaves PrimaryPart nil
	// and the model falls back to bounds-derived positions.
	if def.PrimaryPart != "" {
		g.PrimaryPart = g.FindFirstChild(def.PrimaryPart, false)
	}

	return g
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	collider := components.NewBoxCollider(vec3(def.Size))
	collider.Offset = vec3(def.Offset)
	if def.CanCollide != nil {
		collider.CanCollide = *def.CanCollide
	}
	collider.Water = def.Water
	g.AddComponent(collider)
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	collider := components.NewSphereCollider(def.Radius)
	collider.Offset = vec3(def.Offset)
	if def.CanCollide != nil {
		collider.CanCollide = *def.CanCollide
	}
	collider.Water = def.Water
	g.AddComponent(collider)
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
