// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package rng provides deterministic pseudo-random streams keyed by a seed value.
//
// A seed of any integer, bool or string kind is serialized to a canonical byte
// sequence, hashed with xxhash and expanded into the two words of a PCG state.
// The same seed value therefore yields the same stream on every platform and
// in every run.
package rng

import (
	"encoding/binary"
	"math/rand/v2"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Seedable is the set of seed types a Stream accepts.
type Seedable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~bool | ~string
}

// Source supplies uniform 32-bit integers.
type Source interface {
	NextU32() uint32
}

// Stream is a seeded pseudo-random stream.
// A Stream is not safe for concurrent use.
type Stream[T Seedable] struct {
	src  *rand.PCG
	seed T
}

// New returns a Stream whose draws are fully determined by seed.
// Integer seeds are widened before hashing, so int32(7) and int64(7) share a stream.
func New[T Seedable](seed T) *Stream[T] {
	d := xxhash.Sum64(canonicalBytes(seed))
	return &Stream[T]{
		src:  rand.NewPCG(mix(d), mix(d+goldenRatio64)),
		seed: seed,
	}
}

// NextU32 returns the next draw in [0, 2^32).
func (s *Stream[T]) NextU32() uint32 {
	return uint32(s.src.Uint64() >> 32)
}

// Float64 returns the next draw scaled to [0, 1). It consumes one NextU32.
func (s *Stream[T]) Float64() float64 {
	return Unit(s)
}

// Seed returns the seed the stream was created with.
func (s *Stream[T]) Seed() T {
	return s.seed
}

// Unit draws one value from src and scales it to [0, 1).
func Unit(src Source) float64 {
	return float64(src.NextU32()) / (1 << 32)
}

func canonicalBytes[T Seedable](seed T) []byte {
	v := reflect.ValueOf(seed)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return binary.LittleEndian.AppendUint64([]byte{'i'}, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return binary.LittleEndian.AppendUint64([]byte{'u'}, v.Uint())
	case reflect.Bool:
		if v.Bool() {
			return []byte{'b', 1}
		}
		return []byte{'b', 0}
	case reflect.String:
		return append([]byte{'s'}, v.String()...)
	}
	panic("canonicalBytes: unsupported seed kind " + v.Kind().String())
}

// splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
