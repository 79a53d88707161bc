package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garmio/seedgen/config"
	"github.com/garmio/seedgen/pkg/random"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestPipelineStageOrderSatisfiesRequires(t *testing.T) {
	generated := make(map[string]bool)
	for _, st := range pipeline() {
		for _, req := range st.requires {
			assert.True(t, generated[req],
				"stage %s requires %s before any earlier stage provides it", st.name, req)
		}
		for _, col := range st.provides {
			assert.False(t, generated[col], "collection %s provided twice", col)
			generated[col] = true
		}
	}
	assert.Len(t, generated, 14, "every collection must be provided exactly once")
}

func TestTierIndexMemoizesAssignment(t *testing.T) {
	cfg := config.DefaultGenerationConfig()
	idx := newTierIndex(cfg)
	src := random.New(3)

	tier, mult, err := idx.assign(src, "post-1")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, m, err := idx.assign(src, "post-1")
		require.NoError(t, err)
		assert.Equal(t, tier, again)
		assert.Equal(t, mult, m)
	}
	assert.Equal(t, mult, idx.multiplier("post-1"))
	assert.Equal(t, 1.0, idx.multiplier("never-assigned"))
}

func TestSessionMultiplierClamped(t *testing.T) {
	cfg := config.DefaultGenerationConfig()
	rc := &runContext{cfg: cfg, tiers: newTierIndex(cfg), src: random.New(5)}

	// A viral post on the best day with the best device overshoots the cap.
	rc.tiers.tiers["hot"] = "viral"
	rc.tiers.multipliers["hot"] = 20.0
	m := rc.sessionMultiplier(mustTime(t, "2026-11-22T20:00:00Z"), "hot", 1.10)
	assert.Equal(t, cfg.MultiplierClamp.Max, m)

	// A flop on the slowest day undershoots the floor.
	rc.tiers.tiers["cold"] = "flop"
	rc.tiers.multipliers["cold"] = 0.05
	m = rc.sessionMultiplier(mustTime(t, "2026-02-03T04:00:00Z"), "cold", 0.80)
	assert.Equal(t, cfg.MultiplierClamp.Min, m)
}

func TestSampleSequenceShiftsDepthWithMultiplier(t *testing.T) {
	cfg := config.DefaultGenerationConfig()
	rc := &runContext{cfg: cfg, tiers: newTierIndex(cfg), src: random.New(11)}

	depthSum := func(multiplier float64, draws int) int {
		sum := 0
		for i := 0; i < draws; i++ {
			bucket, err := rc.sampleSequence(multiplier)
			require.NoError(t, err)
			sum += bucket.Depth
		}
		return sum
	}

	shallow := depthSum(cfg.MultiplierClamp.Min, 2000)
	deep := depthSum(cfg.MultiplierClamp.Max, 2000)
	assert.Greater(t, deep, shallow,
		"a higher conversion multiplier must skew sampling toward deeper sequences")
}
