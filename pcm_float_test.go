package wav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampFloat32(t *testing.T) {
	tests := []struct {
		name     string
		value    float32
		min, max float32
		want     float32
	}{
		{"below min", -2, -1, 1, -1},
		{"at min", -1, -1, 1, -1},
		{"in range", 0.5, -1, 1, 0.5},
		{"at max", 1, -1, 1, 1},
		{"above max", 2, -1, 1, 1},
		{"zero", 0, -1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampFloat32(tt.value, tt.min, tt.max))
		})
	}
}

func TestNormalizePCMInt(t *testing.T) {
	tests := []struct {
		name     string
		sample   int
		bitDepth int
		want     float32
	}{
		{"8bit center", 128, 8, 0.003921628},
		{"8bit min", 0, 8, -1},
		{"8bit max", 255, 8, 1},
		{"16bit max", 32767, 16, 0.999969482},
		{"16bit min", -32768, 16, -1},
		{"16bit zero", 0, 16, 0},
		{"32bit zero", 0, 32, 0},
		{"32bit half", 1073741824, 32, 0.5},
		{"unsupported bit depth", 100, 24, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, normalizePCMInt(tt.sample, tt.bitDepth), 1e-4)
		})
	}
}

func TestFloat32ToPCMUint8(t *testing.T) {
	tests := []struct {
		name  string
		value float32
		want  uint8
	}{
		{"min clamped", -2, 0},
		{"negative one", -1, 0},
		{"zero", 0, 128},
		{"positive one", 1, 255},
		{"max clamped", 2, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, float32ToPCMUint8(tt.value))
		})
	}
}

func TestFloat32ToPCMInt32(t *testing.T) {
	tests := []struct {
		name     string
		value    float32
		bitDepth int
		want     int32
	}{
		{"16bit positive", 0.5, 16, 16384},
		{"16bit negative", -0.5, 16, -16384},
		{"32bit positive", 0.5, 32, 1073741824},
		{"unsupported", 0.5, 24, 0},
		{"16bit max", 1, 16, 32767},
		{"16bit min", -1, 16, -32768},
		{"32bit max", 1, 32, 2147483647},
		{"32bit min clamped", -3, 32, -2147483648},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, float32ToPCMInt32(tt.value, tt.bitDepth))
		})
	}
}

func TestFloatsToSamples(t *testing.T) {
	in := []float32{-1, 0, 0.5, 2}

	s, err := floatsToSamples(in, 8)
	require.NoError(t, err)
	assert.Equal(t, PCM8{0, 128, 191, 255}, s)

	s, err = floatsToSamples(in, 16)
	require.NoError(t, err)
	assert.Equal(t, PCM16{-32768, 0, 16384, 32767}, s)

	s, err = floatsToSamples(in, 32)
	require.NoError(t, err)
	assert.Equal(t, PCM32{-2147483648, 0, 1073741824, 2147483647}, s)

	_, err = floatsToSamples(in, 24)
	require.ErrorIs(t, err, ErrUnsupportedSampleWidth)
}

func TestIntsToSamples(t *testing.T) {
	s, err := intsToSamples([]int{-5, 0, 128, 300}, 8)
	require.NoError(t, err)
	assert.Equal(t, PCM8{0, 0, 128, 255}, s)

	s, err = intsToSamples([]int{-40000, -1, 1, 40000}, 16)
	require.NoError(t, err)
	assert.Equal(t, PCM16{-32768, -1, 1, 32767}, s)

	s, err = intsToSamples([]int{-1 << 40, 7, 1 << 40}, 32)
	require.NoError(t, err)
	assert.Equal(t, PCM32{-2147483648, 7, 2147483647}, s)

	_, err = intsToSamples([]int{1}, 12)
	require.ErrorIs(t, err, ErrUnsupportedSampleWidth)
}
