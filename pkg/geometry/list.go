package geometry

import (
	"github.com/lufasu/pathtracer/pkg/core"
)

// HittableList aggregates primitives and answers nearest-hit queries.
// This is a linear O(n) scan per ray; scenes here are small (tens to
// low hundreds of primitives), so there is no spatial index.
type HittableList struct {
	Hittables []core.Hittable
}

// NewHittableList creates an aggregate from the given primitives
func NewHittableList(hittables ...core.Hittable) *HittableList {
	return &HittableList{Hittables: hittables}
}

// Add appends primitives to the list
func (l *HittableList) Add(hittables ...core.Hittable) {
	l.Hittables = append(l.Hittables, hittables...)
}

// Hit returns the closest hit among all primitives, if any. Each
// primitive query passes the best t so far as its tMax, so farther hits
// are pruned early and ties break to the first primitive in order.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, hittable := range l.Hittables {
		if hit, isHit := hittable.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}
