// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2fibonacci

import (
	"fmt"
	"math"
)

// SphereOptions holds the tunables of NewSphere.
type SphereOptions struct {
	// Jitter scales the random offset applied to each point, in units of one
	// spiral step. Zero disables jitter.
	Jitter float64
	// Workers is the number of goroutines that compute points.
	Workers int
}

type SphereOption func(*SphereOptions) error

// WithJitter sets the jitter magnitude. It must be finite and non-negative.
func WithJitter(jitter float64) SphereOption {
	return func(o *SphereOptions) error {
		if math.IsNaN(jitter) || math.IsInf(jitter, 0) || jitter < 0 {
			return fmt.Errorf("WithJitter: jitter must be finite and non-negative, got %v", jitter)
		}
		o.Jitter = jitter
		return nil
	}
}

// WithWorkers sets how many goroutines compute points. The result does not
// depend on the number of workers.
func WithWorkers(workers int) SphereOption {
	return func(o *SphereOptions) error {
		if workers < 1 {
			return fmt.Errorf("WithWorkers: workers must be positive, got %d", workers)
		}
		o.Workers = workers
		return nil
	}
}
