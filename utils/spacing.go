// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"errors"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

// SpacingStats describes the great-circle lengths of the edges between neighboring points.
type SpacingStats struct {
	Edges int
	Min   s1.Angle
	Max   s1.Angle
	Mean  s1.Angle
}

// Spacing measures how evenly points cover the sphere. Neighbors are the
// endpoints of the edges of the convex hull of the points. For points in general
// position there are 3n-6 such edges.
// A zero eps selects the default tolerance.
//
// NOTE: All points must lie on the unit sphere.
func Spacing(points s2.PointVector, eps float64) (SpacingStats, error) {
	if eps < 0 {
		return SpacingStats{}, errors.New("Spacing: eps must be non-negative")
	}
	if eps == 0 {
		eps = defaultEps
	}

	numPoints := len(points)
	if numPoints < 4 {
		return SpacingStats{}, errors.New("Spacing: insufficient points (minimum 4 required)")
	}
	numTriangles := 2 * (numPoints - 2)

	r3points := make([]r3.Vector, numPoints)
	for i, p := range points {
		r3points[i] = p.Vector
	}
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(r3points, true, true, eps)
	if len(ch.Indices) != numTriangles*3 {
		return SpacingStats{}, errors.New("Spacing: inconsistent number of indices returned from QuickHull")
	}

	seen := make(map[[2]int]struct{}, numTriangles*3/2)
	stats := SpacingStats{Min: s1.InfAngle()}
	var sum s1.Angle
	for i := 0; i < len(ch.Indices); i += 3 {
		for j := range 3 {
			a, b := ch.Indices[i+j], ch.Indices[i+(j+1)%3]
			if a > b {
				a, b = b, a
			}
			if _, ok := seen[[2]int{a, b}]; ok {
				continue
			}
			seen[[2]int{a, b}] = struct{}{}

			d := points[a].Distance(points[b])
			stats.Min = min(stats.Min, d)
			stats.Max = max(stats.Max, d)
			sum += d
		}
	}
	stats.Edges = len(seen)
	stats.Mean = sum / s1.Angle(stats.Edges)

	return stats, nil
}
