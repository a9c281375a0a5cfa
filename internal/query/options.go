package query

import (
	"scenequery/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultRayLength is the cast distance used when RayOptions leaves
// MaxDistance unset.
const DefaultRayLength = 1000

// ClosestOptions configures the closest-object query family. The zero value
// (and a nil pointer) is valid; every field defaults independently.
type ClosestOptions struct {
	// MaxDistance rejects results at or beyond this distance. 0 = unbounded.
	MaxDistance float32
	// Ignore excludes these objects and all their descendants.
	Ignore []*engine.GameObject
	// Predicate, when set, must return true for a candidate to qualify.
	Predicate func(*engine.GameObject) bool
	// Scope overrides the engine's search scope for this call only.
	Scope *engine.GameObject
	// UseCache opts into the engine's descendant cache. Only effective when
	// the call runs against the engine's own scope.
	UseCache bool
	// RequireLineOfSight keeps only candidates visible from the query origin.
	RequireLineOfSight bool
	// RequirePrimaryPart skips models without a PrimaryPart instead of
	// falling back to bounds-derived positions.
	RequirePrimaryPart bool
	// NoFallback applies to ClosestModelWithPart: skip a model whose named
	// part is missing instead of using default position resolution.
	NoFallback bool
}

func (o *ClosestOptions) orDefaults() *ClosestOptions {
	if o == nil {
		return &ClosestOptions{}
	}
	return o
}

// RadiusOptions configures the in-radius query family.
type RadiusOptions struct {
	Ignore             []*engine.GameObject
	Predicate          func(*engine.GameObject) bool
	Scope              *engine.GameObject
	UseCache           bool
	RequireLineOfSight bool
	// MaxResults caps the returned set, keeping the smallest distances.
	// 0 = unlimited.
	MaxResults int
	// Unsorted returns results in traversal order instead of ascending
	// distance.
	Unsorted bool
}

func (o *RadiusOptions) orDefaults() *RadiusOptions {
	if o == nil {
		return &RadiusOptions{}
	}
	return o
}

// NameOptions configures name and pattern searches.
type NameOptions struct {
	// DirectOnly restricts the search to the parent's immediate children.
	DirectOnly bool
	// CaseSensitive applies to pattern (substring) matching.
	CaseSensitive bool
	// MaxResults caps the match set. 0 = unlimited.
	MaxResults int
	// TrackOrigin, when set on FindByNamePattern, additionally tracks the
	// closest match to this point and fires the per-pattern change event.
	TrackOrigin *rl.Vector3
	UseCache    bool
}

func (o *NameOptions) orDefaults() *NameOptions {
	if o == nil {
		return &NameOptions{}
	}
	return o
}

// RayOptions configures Raycast and HasLineOfSight.
type RayOptions struct {
	// MaxDistance bounds the cast. 0 = DefaultRayLength. Ignored by
	// HasLineOfSight, which derives the length from its endpoints.
	MaxDistance float32
	// Ignore excludes these objects and all their descendants from
	// obstruction testing.
	Ignore []*engine.GameObject
	// IgnoreWater lets the ray pass through water colliders.
	IgnoreWater bool
	// RespectCanCollide lets the ray pass through colliders with
	// CanCollide unset.
	RespectCanCollide bool
}

func (o *RayOptions) orDefaults() *RayOptions {
	if o == nil {
		return &RayOptions{}
	}
	return o
}

// inIgnoreSet reports whether g is one of the ignored objects or sits below
// one of them.
func inIgnoreSet(g *engine.GameObject, ignore []*engine.GameObject) bool {
	for _, ig := range ignore {
		if ig == nil {
			continue
		}
		if g == ig || g.IsDescendantOf(ig) {
			return true
		}
	}
	return false
}
