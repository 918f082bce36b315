// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package coord converts points between Cartesian and spherical coordinates.
//
// The conversion pair uses a fixed, non-textbook convention: ToCartesian computes
// y as r·sin(phi)·cos(theta) and ToSpherical derives phi with a two-branch
// arctangent instead of atan2. Both functions are kept exactly as they are so that
// previously generated geometry stays reproducible. All angles are in radians.
package coord

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Cartesian is a point with x, y and z coordinates.
type Cartesian struct {
	X, Y, Z float64
}

// Spherical is a point with radial distance R, polar angle Theta and azimuthal angle Phi.
type Spherical struct {
	R, Theta, Phi float64
}

// ToSpherical converts c to spherical coordinates.
// The origin has no defined direction: Theta is NaN and Phi is π/2.
func ToSpherical(c Cartesian) Spherical {
	r := math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z)
	return Spherical{
		R:     r,
		Theta: math.Acos(c.Z / r),
		Phi:   azimuth(c.X, c.Y),
	}
}

// ToCartesian converts s to Cartesian coordinates.
func ToCartesian(s Spherical) Cartesian {
	sinTheta, cosTheta := math.Sincos(s.Theta)
	sinPhi, cosPhi := math.Sincos(s.Phi)
	return Cartesian{
		X: s.R * cosPhi * sinTheta,
		Y: s.R * sinPhi * cosTheta,
		Z: s.R * cosTheta,
	}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Cartesian) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// NOTE: Not atan2. x == 0 maps to π/2 for either sign of y.
func azimuth(x, y float64) float64 {
	switch {
	case x > 0:
		return math.Atan(y / x)
	case x < 0:
		return math.Atan(y/x) + math.Pi
	}
	return math.Pi / 2
}

// Spherical returns c in spherical coordinates. See ToSpherical.
func (c Cartesian) Spherical() Spherical {
	return ToSpherical(c)
}

// Distance returns the Euclidean distance between c and o.
func (c Cartesian) Distance(o Cartesian) float64 {
	return Distance(c, o)
}

// Norm returns the distance of c from the origin.
func (c Cartesian) Norm() float64 {
	return math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z)
}

// Vector returns c as an r3.Vector.
func (c Cartesian) Vector() r3.Vector {
	return r3.Vector{X: c.X, Y: c.Y, Z: c.Z}
}

// Point returns the unit-sphere point in the direction of c.
// The origin maps to s2.OriginPoint().
func (c Cartesian) Point() s2.Point {
	return s2.PointFromCoords(c.X, c.Y, c.Z)
}

// FromVector returns v as a Cartesian point.
func FromVector(v r3.Vector) Cartesian {
	return Cartesian{X: v.X, Y: v.Y, Z: v.Z}
}

// Cartesian returns s in Cartesian coordinates. See ToCartesian.
func (s Spherical) Cartesian() Cartesian {
	return ToCartesian(s)
}
