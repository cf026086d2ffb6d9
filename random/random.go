// Copyright 2026 NumGo Array Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random provides the explicitly seeded pseudo-random generator
// used by the array engine's random creation routines.
//
// Given the same seed and the same sequence of draw calls, a Generator
// produces bit-for-bit identical output. Generators are not safe for
// concurrent draws without external synchronization; either serialize
// access or give each goroutine its own seeded Generator.
//
// Example:
//
//	g := random.New(0)
//	u := g.Float64()       // uniform [0, 1)
//	z := g.Normal(0, 1)    // standard normal
//	k := g.Int63n(10, 20)  // uniform integer in [10, 20)
//	g.Seed(0)              // replay the same sequence
package random

import (
	"github.com/numgo-ml/numgo/internal/random"
)

// Generator is a seedable source of pseudo-random draws.
type Generator = random.Generator

// New returns a generator seeded deterministically with seed.
func New(seed int64) *Generator {
	return random.New(seed)
}

// Default returns the process-wide generator used by creation routines
// that are not given an explicit generator.
func Default() *Generator {
	return random.Default()
}

// Seed reseeds the process-wide generator deterministically.
func Seed(seed int64) {
	random.Seed(seed)
}
