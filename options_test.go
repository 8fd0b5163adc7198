package tiervec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		option string
	}{
		{"TierCountNotPowerOfTwo", []Option{WithMinTierCount(3)}, "min tier count"},
		{"TierCountTooSmall", []Option{WithMinTierCount(1)}, "min tier count"},
		{"TierCapacityNotPowerOfTwo", []Option{WithMinTierCapacity(12)}, "min tier capacity"},
		{"TierCapacityNegative", []Option{WithMinTierCapacity(-4)}, "min tier capacity"},
		{"NegativeInitialCapacity", []Option{WithInitialCapacity(-1)}, "initial capacity"},
		{"NegativeMaxCapacity", []Option{WithMaxCapacity(-1)}, "max capacity"},
		{"NegativeMemoryLimit", []Option{WithMemoryLimit(-1)}, "memory limit"},
		{"MaxBelowFloor", []Option{WithMinTierCapacity(4), WithMaxCapacity(8)}, "max capacity"},
		{"InitialAboveMax", []Option{WithMinTierCapacity(4), WithMaxCapacity(64), WithInitialCapacity(65)}, "initial capacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[int](tt.opts...)
			var invalid *ErrInvalidOption
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.option, invalid.Option)
			assert.Contains(t, err.Error(), tt.option)
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	o, err := applyOptions[int64]([]Option{nil})
	require.NoError(t, err)

	assert.Equal(t, DefaultMinTierCount, o.minTierCount)
	assert.Equal(t, defaultMinTierCapacity[int64](), o.minTierCapacity)
	assert.Nil(t, o.rc)
	assert.NotNil(t, o.logger)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
}

func TestOptionsMemoryLimit(t *testing.T) {
	o, err := applyOptions[int]([]Option{WithMemoryLimit(1 << 20)})
	require.NoError(t, err)
	require.NotNil(t, o.rc)
	assert.Equal(t, int64(1<<20), o.rc.MemoryLimit())
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew[int](WithMinTierCount(3))
	})
}
