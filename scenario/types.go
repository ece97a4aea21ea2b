// Package scenario builds deterministic schedule.Schedule fixtures: fixed
// topologies for worked examples (Chain, Diamond) and seeded random STNs for
// property-based testing. Every builder here is deterministic for a given
// set of options — same inputs and seed produce an identical Schedule, the
// same way builder.BuildGraph composes constructors deterministically in
// the graph-construction package this one is modeled on.
package scenario

import "math/rand"

// Option configures a scenarioConfig. Functional options keep the builder
// signatures stable as knobs are added, mirroring builder.BuilderOption.
type Option func(*scenarioConfig)

// scenarioConfig holds resolved knobs for the random generators. Builders
// that don't need randomness (Chain, Diamond) ignore it entirely.
type scenarioConfig struct {
	rng          *rand.Rand
	durationLo   float64
	durationHi   float64
	constraintLo float64
	constraintHi float64
}

// defaultScenarioConfig matches AddEpisode/AddConstraint's own implicit
// defaults: instantaneous episodes, zero-width constraints.
func defaultScenarioConfig() scenarioConfig {
	return scenarioConfig{
		durationLo:   0,
		durationHi:   0,
		constraintLo: 0,
		constraintHi: 0,
	}
}

// WithSeed freezes the random stream used by RandomSTN, making its output
// reproducible across runs.
func WithSeed(seed int64) Option {
	return func(cfg *scenarioConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDurationRange bounds the [lo, hi] episode durations RandomSTN samples,
// in absolute time units. hi is drawn uniformly from [lo, hi] and lo is then
// drawn uniformly from [lo, drawnHi] so every sampled interval is valid.
func WithDurationRange(lo, hi float64) Option {
	return func(cfg *scenarioConfig) {
		cfg.durationLo = lo
		cfg.durationHi = hi
	}
}

// WithConstraintRange bounds the [lo, hi] inter-episode chain constraints
// RandomSTN samples between consecutive episodes.
func WithConstraintRange(lo, hi float64) Option {
	return func(cfg *scenarioConfig) {
		cfg.constraintLo = lo
		cfg.constraintHi = hi
	}
}

func newScenarioConfig(opts ...Option) scenarioConfig {
	cfg := defaultScenarioConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
