package state

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s, err := New(12)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Capacity())
	assert.Equal(t, 1, s.BandCount())
	assert.False(t, s.Frozen())

	_, err = New(0)
	assert.ErrorIs(t, err, ErrCapacity)
	_, err = New(MaxCapacity + 1)
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestSetCrossoverFrequencies(t *testing.T) {
	s, err := New(8)
	require.NoError(t, err)
	require.NoError(t, s.SetSampleRate(44100))
	require.NoError(t, s.SetBandCount(3))

	n, err := s.SetCrossoverFrequencies([]float64{500, 2000})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got := make([]float64, 4)
	assert.Equal(t, 2, s.CrossoverFrequencies(got))
	assert.Equal(t, []float64{500, 2000}, got[:2])

	f, ok := s.CrossoverFrequency(1)
	assert.True(t, ok)
	assert.InDelta(t, 2000.0, f, 0)
}

func TestSetCrossoverFrequencies_RejectsAndKeepsPrevious(t *testing.T) {
	s, err := New(8)
	require.NoError(t, err)
	require.NoError(t, s.SetSampleRate(44100))
	require.NoError(t, s.SetBandCount(3))
	_, err = s.SetCrossoverFrequencies([]float64{500, 2000})
	require.NoError(t, err)

	bad := map[string][]float64{
		"wrong count":   {500},
		"unsorted":      {2000, 500},
		"equal":         {500, 500},
		"zero":          {0, 500},
		"negative":      {-1, 500},
		"nan":           {math.NaN(), 500},
		"at nyquist":    {500, 22050},
		"above nyquist": {500, 30000},
	}
	for name, freqs := range bad {
		t.Run(name, func(t *testing.T) {
			n, err := s.SetCrossoverFrequencies(freqs)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Zero(t, n)

			got := make([]float64, 2)
			s.CrossoverFrequencies(got)
			assert.Equal(t, []float64{500, 2000}, got)
		})
	}
}

func TestCrossoverFrequency_OutOfRange(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)
	require.NoError(t, s.SetBandCount(2))

	for _, i := range []int{-1, 1, 5} {
		f, ok := s.CrossoverFrequency(i)
		assert.False(t, ok, "index %d", i)
		assert.Zero(t, f)
	}
}

func TestSetBandCount(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetBandCount(0), ErrConfiguration)
	assert.ErrorIs(t, s.SetBandCount(5), ErrCapacity)
	assert.Equal(t, 1, s.BandCount())

	require.NoError(t, s.SetBandCount(3))
	_, err = s.SetCrossoverFrequencies([]float64{100, 1000})
	require.NoError(t, err)

	// Shrinking keeps the surviving boundary, growing zeroes new slots.
	require.NoError(t, s.SetBandCount(2))
	require.NoError(t, s.SetBandCount(3))
	f0, _ := s.CrossoverFrequency(0)
	f1, _ := s.CrossoverFrequency(1)
	assert.InDelta(t, 100.0, f0, 0)
	assert.Zero(t, f1)
}

func TestSetCapacity(t *testing.T) {
	s, err := New(6)
	require.NoError(t, err)
	require.NoError(t, s.SetBandCount(4))
	_, err = s.SetCrossoverFrequencies([]float64{100, 1000, 5000})
	require.NoError(t, err)

	require.NoError(t, s.SetCapacity(3))
	assert.Equal(t, 3, s.Capacity())
	assert.Equal(t, 3, s.BandCount())
	got := make([]float64, 2)
	s.CrossoverFrequencies(got)
	assert.Equal(t, []float64{100, 1000}, got)

	s.Freeze()
	err = s.SetCapacity(8)
	assert.True(t, errors.Is(err, ErrFrozen))
	assert.Equal(t, 3, s.Capacity())
}

func TestSetOrderAndSampleRate(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetOrder(0), ErrConfiguration)
	require.NoError(t, s.SetOrder(6))
	assert.Equal(t, 6, s.Order())

	assert.ErrorIs(t, s.SetSampleRate(0), ErrConfiguration)
	assert.ErrorIs(t, s.SetSampleRate(math.Inf(1)), ErrConfiguration)
	require.NoError(t, s.SetSampleRate(48000))
	assert.InDelta(t, 48000.0, s.SampleRate(), 0)
}

func TestValidateLayout_NoSampleRate(t *testing.T) {
	assert.NoError(t, ValidateLayout(2, []float64{1e6}, 0))
	assert.NoError(t, ValidateLayout(1, nil, 44100))
	assert.ErrorIs(t, ValidateLayout(0, nil, 44100), ErrConfiguration)
}
