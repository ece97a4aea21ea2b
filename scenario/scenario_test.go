package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/interval"
	"github.com/katalvlaran/tempograph/scenario"
)

func TestChain_BuildsNEpisodes(t *testing.T) {
	s, episodes, err := scenario.Chain(3, interval.New(1, 2))
	require.NoError(t, err)
	require.Len(t, episodes, 3)

	for _, ep := range episodes {
		d, err := s.GetDuration(ep)
		require.NoError(t, err)
		assert.Equal(t, interval.New(1, 2), d)
	}
}

func TestDiamond_MatchesWorkedExample(t *testing.T) {
	s, events, err := scenario.Diamond()
	require.NoError(t, err)
	a, _, _, d := events[0], events[1], events[2], events[3]

	iv, err := s.Interval(a, d)
	require.NoError(t, err)
	assert.Equal(t, interval.New(2, 11), iv)
}

func TestRandomSTN_RequiresSeed(t *testing.T) {
	_, _, err := scenario.RandomSTN(5)
	assert.ErrorIs(t, err, scenario.ErrNeedRandSource)
}

func TestRandomSTN_DeterministicForFixedSeed(t *testing.T) {
	opts := []scenario.Option{
		scenario.WithSeed(42),
		scenario.WithDurationRange(1, 10),
		scenario.WithConstraintRange(0, 3),
	}
	s1, eps1, err := scenario.RandomSTN(6, opts...)
	require.NoError(t, err)
	s2, eps2, err := scenario.RandomSTN(6, opts...)
	require.NoError(t, err)

	require.Len(t, eps1, len(eps2))
	for i := range eps1 {
		d1, err := s1.GetDuration(eps1[i])
		require.NoError(t, err)
		d2, err := s2.GetDuration(eps2[i])
		require.NoError(t, err)
		assert.Equal(t, d1, d2)
	}
}

func TestRandomSTN_AlwaysProducesValidIntervals(t *testing.T) {
	s, episodes, err := scenario.RandomSTN(20, scenario.WithSeed(7), scenario.WithDurationRange(0, 50))
	require.NoError(t, err)

	for _, ep := range episodes {
		d, err := s.GetDuration(ep)
		require.NoError(t, err)
		assert.True(t, d.IsValid(), "sampled duration %v must be valid", d)
	}
}
