package scenario

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tempograph/interval"
	"github.com/katalvlaran/tempograph/schedule"
)

// ErrNeedRandSource is returned by RandomSTN when called without WithSeed;
// an unseeded random STN would not be reproducible across runs.
var ErrNeedRandSource = fmt.Errorf("scenario: RandomSTN requires WithSeed")

// RandomSTN builds a schedule of n independent episodes chained in
// creation order, with durations and inter-episode constraints sampled
// from the ranges set by WithDurationRange/WithConstraintRange (both
// default to [0, 0] — instantaneous episodes back to back). Determinism
// requires WithSeed; without it RandomSTN returns ErrNeedRandSource before
// touching the Schedule, the same way builder.RandomSparse insists on an
// RNG before sampling any edge.
//
// n must be at least 1.
func RandomSTN(n int, opts ...Option) (*schedule.Schedule, []schedule.Episode, error) {
	cfg := newScenarioConfig(opts...)
	if cfg.rng == nil {
		return nil, nil, ErrNeedRandSource
	}
	if n < 1 {
		return nil, nil, fmt.Errorf("scenario: RandomSTN n=%d must be >= 1", n)
	}

	s := schedule.New()
	episodes := make([]schedule.Episode, 0, n)

	var prev *schedule.Episode
	for i := 0; i < n; i++ {
		d := sampleInterval(cfg.rng, cfg.durationLo, cfg.durationHi)
		ep, err := s.AddEpisode(d)
		if err != nil {
			return nil, nil, err
		}
		episodes = append(episodes, ep)
		if prev != nil {
			c := sampleInterval(cfg.rng, cfg.constraintLo, cfg.constraintHi)
			if err := s.AddConstraint(prev.End(), ep.Start(), c); err != nil {
				return nil, nil, err
			}
		}
		prev = &episodes[len(episodes)-1]
	}

	return s, episodes, nil
}

// sampleInterval draws hi uniformly from [lo, hi], then lo' uniformly from
// [lo, hi'], guaranteeing 0 <= lo' <= hi' whenever 0 <= lo.
func sampleInterval(rng *rand.Rand, lo, hi float64) interval.Interval {
	if hi <= lo {
		return interval.New(lo, hi)
	}
	drawnHi := lo + rng.Float64()*(hi-lo)
	drawnLo := lo + rng.Float64()*(drawnHi-lo)

	return interval.New(drawnLo, drawnHi)
}
