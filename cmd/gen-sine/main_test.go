package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wtesler/wav"
)

func TestRunGeneratesWavFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sine.wav")

	err := run([]string{"-output", outPath, "-length", "0.01", "-frequency", "220"})
	require.NoError(t, err)

	fi, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Equal(t, int64(44+480*2), fi.Size())

	c, err := wav.DecodeFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, uint32(48000), c.Format.SampleRate)
	assert.Equal(t, uint16(16), c.Format.BitsPerSample)
	assert.Equal(t, uint16(1), c.Format.NumChannels)
	assert.Equal(t, 480, c.Frames())
}

func TestRunRateAndBits(t *testing.T) {
	tests := []struct {
		bits string
		want uint16
	}{
		{"8", 8},
		{"16", 16},
		{"32", 32},
	}

	for _, tt := range tests {
		t.Run(tt.bits, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "sine.wav")

			err := run([]string{"-output", outPath, "-length", "0.5", "-rate", "8000", "-bits", tt.bits})
			require.NoError(t, err)

			c, err := wav.DecodeFile(outPath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Samples.BitsPerSample())
			assert.Equal(t, uint32(8000), c.Format.SampleRate)
			assert.Equal(t, 4000, c.Samples.Len())
		})
	}
}

func TestRunFirstSampleIsSilent(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "default.wav")

	require.NoError(t, run([]string{"-output", outPath, "-length", "0.005"}))

	c, err := wav.DecodeFile(outPath)
	require.NoError(t, err)

	// 0.005 sec * 48000 Hz = 240 samples
	require.Equal(t, 240, c.Samples.Len())
	assert.Equal(t, 0, c.Samples.Int(0))
	assert.Positive(t, c.Samples.Int(10))
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"flag parse", []string{"-length", "not-a-number"}},
		{"unsupported bits", []string{"-bits", "24", "-output", filepath.Join(t.TempDir(), "x.wav")}},
		{"bad rate", []string{"-rate", "0"}},
		{"negative length", []string{"-length", "-1"}},
		{"invalid output path", []string{"-output", "/nonexistent/dir/file.wav", "-length", "0.001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, run(tt.args))
		})
	}
}

func TestRunUnsupportedBitsIsCodecError(t *testing.T) {
	err := run([]string{"-bits", "12", "-length", "0.001", "-output", filepath.Join(t.TempDir(), "x.wav")})
	require.ErrorIs(t, err, wav.ErrUnsupportedSampleWidth)
}
