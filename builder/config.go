// SPDX-License-Identifier: MIT
// Package: bistellar/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • scale   = DefaultScale (1.0)
//   • origin  = (0,0,0)
//   • infoFn  = identity (Info = input point index)

package builder

import (
	"github.com/golang/geo/r3"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	scale  float64
	origin r3.Vector
	infoFn func(int) int
}

// newBuilderConfig applies options in order over the defaults; last wins.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale:  DefaultScale,
		infoFn: identityInfo,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a fixture coordinate into the caller's frame.
func (c builderConfig) place(p r3.Vector) r3.Vector {
	return p.Mul(c.scale).Add(c.origin)
}

func identityInfo(i int) int { return i }
