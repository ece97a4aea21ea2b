package interval_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/interval"
)

// TestInterval_BasicAccessors verifies New/Lower/Upper/Contains/IsValid
// on a handful of representative intervals.
func TestInterval_BasicAccessors(t *testing.T) {
	iv := interval.New(1, 5)
	assert.Equal(t, 1.0, iv.Lower())
	assert.Equal(t, 5.0, iv.Upper())
	assert.True(t, iv.IsValid())
	assert.True(t, iv.Contains(1))
	assert.True(t, iv.Contains(5))
	assert.True(t, iv.Contains(3))
	assert.False(t, iv.Contains(0.999))

	inverted := interval.New(5, 1)
	assert.False(t, inverted.IsValid())
}

// TestInterval_Union locks in the "tighten" semantics: the result is the
// intersection of the two admissible ranges, never wider than either
// input.
func TestInterval_Union(t *testing.T) {
	a := interval.New(0, 10)
	b := interval.New(2, 8)
	got := a.Union(b)
	assert.Equal(t, interval.New(2, 8), got)

	// Disjoint ranges tighten into an invalid (infeasible) interval
	// rather than panicking.
	c := interval.New(0, 1)
	d := interval.New(5, 6)
	disjoint := c.Union(d)
	assert.False(t, disjoint.IsValid())
}

// TestInterval_Indexing verifies positional access: index 0 is Lo,
// index 1 is Hi, anything else reports ok=false.
func TestInterval_Indexing(t *testing.T) {
	iv := interval.New(3, 7)
	lo, ok := iv.At(0)
	require.True(t, ok)
	assert.Equal(t, 3.0, lo)

	hi, ok := iv.At(1)
	require.True(t, ok)
	assert.Equal(t, 7.0, hi)

	_, ok = iv.At(2)
	assert.False(t, ok)
}

// TestInterval_JSON verifies the [lo, hi] wire form round-trips and
// matches ToJSON.
func TestInterval_JSON(t *testing.T) {
	iv := interval.New(-2.5, 4)
	assert.Equal(t, [2]float64{-2.5, 4}, iv.ToJSON())

	raw, err := json.Marshal(iv)
	require.NoError(t, err)
	assert.JSONEq(t, `[-2.5, 4]`, string(raw))

	var decoded interval.Interval
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, iv, decoded)
}

// TestInterval_Unbounded verifies the HUGE-based sentinel used instead
// of IEEE-754 infinity to keep arithmetic well-defined.
func TestInterval_Unbounded(t *testing.T) {
	u := interval.Unbounded()
	assert.Equal(t, -interval.HUGE, u.Lower())
	assert.Equal(t, interval.HUGE, u.Upper())
	assert.True(t, u.IsValid())
}
