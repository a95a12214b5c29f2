package cryptor

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParallelConfigIsValid(t *testing.T) {
	cfg := DefaultParallelConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Enabled)
	assert.GreaterOrEqual(t, cfg.MinItemsForParallel, 1)
}

func TestParallelConfigValidateRejectsBadFields(t *testing.T) {
	cases := []ParallelConfig{
		{Enabled: true, MaxWorkers: -1, MinItemsForParallel: 4},
		{Enabled: true, MaxWorkers: 2000, MinItemsForParallel: 4},
		{Enabled: true, MaxWorkers: 4, MinItemsForParallel: 0},
	}
	for i, cfg := range cases {
		assert.Errorf(t, cfg.Validate(), "case %d", i)
	}
}

func TestParallelConfigValidateSkipsNumericChecksWhenDisabled(t *testing.T) {
	cfg := ParallelConfig{Enabled: false, MaxWorkers: -1, MinItemsForParallel: -1}
	assert.NoError(t, cfg.Validate())
}

func TestParallelRangeCallsEveryIndexExactlyOnce(t *testing.T) {
	defer SetParallelConfig(DefaultParallelConfig())

	seen := func(n int) []int32 {
		hits := make([]int32, n)
		parallelRange(n, func(i int) {
			atomic.AddInt32(&hits[i], 1)
		})
		return hits
	}

	SetParallelConfig(ParallelConfig{Enabled: false, MaxWorkers: 1, MinItemsForParallel: 1})
	for _, hit := range seen(10) {
		assert.EqualValues(t, 1, hit, "sequential path")
	}

	SetParallelConfig(ParallelConfig{Enabled: true, MaxWorkers: 4, MinItemsForParallel: 1})
	for _, hit := range seen(50) {
		assert.EqualValues(t, 1, hit, "parallel path")
	}
}

func TestParallelRangeZeroItemsDoesNothing(t *testing.T) {
	defer SetParallelConfig(DefaultParallelConfig())
	called := false
	parallelRange(0, func(i int) { called = true })
	assert.False(t, called)
}

func TestParallelRangeRespectsMinItemsThreshold(t *testing.T) {
	defer SetParallelConfig(DefaultParallelConfig())
	SetParallelConfig(ParallelConfig{Enabled: true, MaxWorkers: 4, MinItemsForParallel: 100})

	var count int32
	parallelRange(5, func(i int) {
		atomic.AddInt32(&count, 1)
	})
	assert.EqualValues(t, 5, count, "below-threshold work should still all run")
}
