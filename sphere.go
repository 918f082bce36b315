// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2fibonacci places evenly distributed points on the unit sphere using
// the Fibonacci lattice (golden-angle spiral).

package s2fibonacci

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/2dChan/s2fibonacci/coord"
	"github.com/2dChan/s2fibonacci/rng"
	"github.com/cespare/xxhash/v2"
	"github.com/golang/geo/s2"
	"golang.org/x/sync/errgroup"
)

// GoldenAngle is π·(3−√5), the longitude increment between consecutive points.
const GoldenAngle = 2.39996322972865332223155550663361385312499901105811504

const (
	defaultWorkers = 1
)

// Sphere is an ordered set of points on the unit sphere.
// The order is the spiral traversal from the north pole to the south pole.
type Sphere[T rng.Seedable] struct {
	requested int
	jitter    float64
	seed      T

	points    []coord.Spherical
	cartesian []coord.Cartesian
}

// NewSphere places n-1 points on the unit sphere. Point k lies at height
// z = 1 - dz/2 - k·dz with dz = 2/n and at longitude k·GoldenAngle.
// For n <= 1 the sphere is empty.
//
// The seed keys the jitter stream; without WithJitter it is only recorded.
func NewSphere[T rng.Seedable](n int, seed T, setters ...SphereOption) (*Sphere[T], error) {
	opts := SphereOptions{
		Workers: defaultWorkers,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if n < 0 {
		return nil, fmt.Errorf("NewSphere: negative point count %d", n)
	}

	numPoints := max(n-1, 0)
	s := &Sphere[T]{
		requested: n,
		jitter:    opts.Jitter,
		seed:      seed,
		points:    make([]coord.Spherical, numPoints),
		cartesian: make([]coord.Cartesian, numPoints),
	}
	if numPoints == 0 {
		return s, nil
	}

	sp := spiral{dz: 2 / float64(n)}
	// NOTE: Draws are taken in index order before the points are split between
	// workers, so the result does not depend on opts.Workers.
	var offsets []offset
	if opts.Jitter > 0 {
		offsets = drawOffsets(rng.New(seed), numPoints, opts.Jitter)
	}

	fill := func(lo, hi int) {
		for k := lo; k < hi; k++ {
			var c coord.Cartesian
			if offsets != nil {
				c = sp.jittered(k, offsets[k])
			} else {
				c = sp.point(k)
			}
			s.cartesian[k] = c
			s.points[k] = coord.ToSpherical(c)
		}
	}

	workers := min(opts.Workers, numPoints)
	if workers <= 1 {
		fill(0, numPoints)
		return s, nil
	}

	var g errgroup.Group
	chunk := (numPoints + workers - 1) / workers
	for lo := 0; lo < numPoints; lo += chunk {
		hi := min(lo+chunk, numPoints)
		g.Go(func() error {
			fill(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s, nil
}

// Len returns the number of points.
func (s *Sphere[T]) Len() int {
	return len(s.points)
}

// Requested returns the point count passed to NewSphere.
func (s *Sphere[T]) Requested() int {
	return s.requested
}

// Jitter returns the jitter magnitude.
func (s *Sphere[T]) Jitter() float64 {
	return s.jitter
}

// Seed returns the seed passed to NewSphere.
func (s *Sphere[T]) Seed() T {
	return s.seed
}

// Points returns a copy of the points in spiral order.
func (s *Sphere[T]) Points() []coord.Spherical {
	return slices.Clone(s.points)
}

// Point returns the point at index i.
// It returns an error if the index is out of range.
func (s *Sphere[T]) Point(i int) (coord.Spherical, error) {
	if i < 0 || i >= len(s.points) {
		return coord.Spherical{}, fmt.Errorf("Point: index %d out of range [0 %d)", i, len(s.points))
	}
	return s.points[i], nil
}

// Cartesian returns a copy of the points in Cartesian coordinates, in spiral order.
// These are the positions the spiral produced, before conversion to spherical.
func (s *Sphere[T]) Cartesian() []coord.Cartesian {
	return slices.Clone(s.cartesian)
}

// PointVector returns the points as s2 points, in spiral order.
func (s *Sphere[T]) PointVector() s2.PointVector {
	pv := make(s2.PointVector, len(s.cartesian))
	for i, c := range s.cartesian {
		pv[i] = c.Point()
	}
	return pv
}

// Fingerprint returns a hash of the exact bits of every point, in order.
// Two spheres with equal fingerprints hold the same points.
func (s *Sphere[T]) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 24)
	for _, p := range s.points {
		buf = buf[:0]
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.R))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.Theta))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.Phi))
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

type spiral struct {
	dz float64
}

// height and longitude are the closed forms of z -= dz and long += GoldenAngle.
func (sp spiral) height(k int) float64 {
	return 1 - sp.dz/2 - float64(k)*sp.dz
}

func (sp spiral) longitude(k int) float64 {
	return math.Mod(float64(k)*GoldenAngle, 2*math.Pi)
}

func (sp spiral) point(k int) coord.Cartesian {
	return onSphere(sp.height(k), sp.longitude(k))
}

func (sp spiral) jittered(k int, off offset) coord.Cartesian {
	z := sp.height(k) + off.z*sp.dz
	z = max(-1, min(1, z))
	return onSphere(z, sp.longitude(k)+off.long*GoldenAngle)
}

func onSphere(z, long float64) coord.Cartesian {
	rxy := math.Sqrt(1 - z*z)
	sin, cos := math.Sincos(long)
	return coord.Cartesian{X: cos * rxy, Y: sin * rxy, Z: z}
}

// offset is a jitter displacement in units of one spiral step.
type offset struct {
	long, z float64
}

func drawOffsets(src rng.Source, n int, jitter float64) []offset {
	offsets := make([]offset, n)
	for i := range offsets {
		offsets[i].long = (rng.Unit(src) - 0.5) * jitter
		offsets[i].z = (rng.Unit(src) - 0.5) * jitter
	}
	return offsets
}
