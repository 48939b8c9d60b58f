// SPDX-License-Identifier: MIT
// Package: bistellar/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"

	"github.com/golang/geo/r3"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before the triangulation is assembled.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithScale multiplies every fixture coordinate by s before placement.
// Panics if s is not a positive finite number.
// Complexity: O(1) time, O(1) space.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOrigin translates every fixture coordinate by o, after scaling.
// Complexity: O(1) time, O(1) space.
func WithOrigin(o r3.Vector) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithInfo sets the per-vertex info label: input point index -> Info.
// Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithInfo(fn func(int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithInfo(nil)")
	}
	return func(c *builderConfig) {
		c.infoFn = fn
	}
}
