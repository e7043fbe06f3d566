// SPDX-License-Identifier: MIT
// Package: collabgraph/builder
//
// options.go — functional options for the synthetic dataset generator.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Generation itself never panics.
//   • Determinism is explicit: the default RNG is seeded with DefaultSeed;
//     WithSeed or WithRand replace it.

package builder

import (
	"math/rand"
	"strconv"
)

// Defaults applied before options.
const (
	DefaultSeed        int64 = 1
	DefaultConferences       = 8
	DefaultMaxTeam           = 4
	DefaultCommunity         = 25
)

// Option customizes a generator run by mutating a config before use.
type Option func(*config)

// config holds everything a run needs; no package globals.
type config struct {
	rng         *rand.Rand
	conferences int
	maxTeam     int
	community   int
	nameFn      func(id int64) string
}

func defaultConfig() config {
	return config{
		rng:         rand.New(rand.NewSource(DefaultSeed)),
		conferences: DefaultConferences,
		maxTeam:     DefaultMaxTeam,
		community:   DefaultCommunity,
		nameFn:      func(id int64) string { return "Author " + strconv.FormatInt(id, 10) },
	}
}

// WithSeed replaces the RNG with one seeded by seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithConferences sets how many venues publications are spread over.
// Panics if n < 1.
func WithConferences(n int) Option {
	if n < 1 {
		panic("builder: WithConferences(n < 1)")
	}
	return func(c *config) { c.conferences = n }
}

// WithMaxTeam caps the number of authors per publication. Panics if k < 1.
func WithMaxTeam(k int) Option {
	if k < 1 {
		panic("builder: WithMaxTeam(k < 1)")
	}
	return func(c *config) { c.maxTeam = k }
}

// WithCommunity sets the id window co-authors are drawn from around the
// lead author. Smaller windows give more clustered graphs. Panics if w < 1.
func WithCommunity(w int) Option {
	if w < 1 {
		panic("builder: WithCommunity(w < 1)")
	}
	return func(c *config) { c.community = w }
}

// WithNameFn sets the author naming scheme. Panics on nil.
func WithNameFn(fn func(id int64) string) Option {
	if fn == nil {
		panic("builder: WithNameFn(nil)")
	}
	return func(c *config) { c.nameFn = fn }
}
