package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	"github.com/orcaman/writerseeker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wtesler/wav"
)

func TestConvert16Bit(t *testing.T) {
	c, err := wav.New(44100, 2, wav.PCM16{0, 0, 1000, -1000, 32767, -32768})
	require.NoError(t, err)

	ws := &writerseeker.WriterSeeker{}
	require.NoError(t, convert(c, ws))

	dec := aiff.NewDecoder(ws.BytesReader())
	require.True(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1000, -1000, 32767, -32768}, buf.Data)
	assert.Equal(t, 44100, buf.Format.SampleRate)
	assert.Equal(t, 2, buf.Format.NumChannels)
	assert.Equal(t, 16, int(dec.BitDepth))
}

func TestAIFFBufferSigns8BitSamples(t *testing.T) {
	c, err := wav.New(8000, 1, wav.PCM8{0, 128, 255})
	require.NoError(t, err)

	buf := aiffBuffer(c)
	require.NotNil(t, buf)
	assert.Equal(t, []int{-128, 0, 127}, buf.Data)
	assert.Equal(t, wav.PCM8{0, 128, 255}, c.Samples, "source samples must not change")

	assert.Nil(t, aiffBuffer(&wav.Container{}))
}

func TestConvertNilContainer(t *testing.T) {
	require.ErrorIs(t, convert(&wav.Container{}, &writerseeker.WriterSeeker{}), wav.ErrNilContainer)
}

func TestRunWritesAIFF(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "tone.wav")

	c, err := wav.New(22050, 1, wav.PCM16{1, 2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, wav.EncodeFile(inPath, c))

	require.NoError(t, run([]string{"-path", inPath}))

	f, err := os.Open(filepath.Join(dir, "tone.aif"))
	require.NoError(t, err)
	defer f.Close()

	buf, err := aiff.NewDecoder(f).FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, buf.Data)
}

func TestRunErrors(t *testing.T) {
	require.ErrorIs(t, run(nil), errMissingPath)
	require.ErrorIs(t, run([]string{"-path", filepath.Join(t.TempDir(), "missing.wav")}), wav.ErrSourceUnavailable)

	bad := filepath.Join(t.TempDir(), "bad.wav")
	require.NoError(t, os.WriteFile(bad, []byte("not a wav file at all"), 0o644))
	require.ErrorIs(t, run([]string{"-path", bad}), wav.ErrMalformedHeader)

	require.Error(t, run([]string{"-bogus"}))
}

func TestExpandHome(t *testing.T) {
	got, err := expandHome("/tmp/a.wav")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.wav", got)

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err = expandHome("~/a.wav")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a.wav"), got)
}
