// Package nav provides nearest-valid-point queries against walkable space.
// The query engine treats any Provider as an opaque host service: lookups
// either succeed or report not-found, never fault.
package nav

import (
	"scenequery/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Provider answers nearest-navigable-point lookups.
type Provider interface {
	// NearestPoint returns the closest navigable point to pos. The second
	// return is false when no navigable point lies within maxDistance.
	NearestPoint(pos rl.Vector3, maxDistance float32) (rl.Vector3, bool)
}

// VolumeMesh is walkable space described as a flat set of axis-aligned
// volumes. Nearest-point lookups clamp the query position into each volume
// and keep the closest result, a linear scan like everything else in this
// repo.
type VolumeMesh struct {
	volumes []physics.AABB
}

func NewVolumeMesh(volumes ...physics.AABB) *VolumeMesh {
	return &VolumeMesh{volumes: volumes}
}

// AddVolume appends a walkable volume.
func (m *VolumeMesh) AddVolume(box physics.AABB) {
	m.volumes = append(m.volumes, box)
}

// NearestPoint implements Provider.
func (m *VolumeMesh) NearestPoint(pos rl.Vector3, maxDistance float32) (rl.Vector3, bool) {
	var best rl.Vector3
	var bestDist float32
	found := false

	for _, vol := range m.volumes {
		point := vol.ClosestPoint(pos)
		d := physics.Distance(pos, point)
		if d > maxDistance {
			continue
		}
		if !found || d < bestDist {
			best = point
			bestDist = d
			found = true
		}
	}

	return best, found
}
