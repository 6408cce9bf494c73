package wav

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

// PCMFormat returns the go-audio format of the container.
func (c *Container) PCMFormat() *audio.Format {
	if c == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(c.Format.NumChannels),
		SampleRate:  int(c.Format.SampleRate),
	}
}

// IntBuffer copies the samples into a go-audio int buffer. 8-bit samples
// stay unsigned (0..255), like go-audio/wav reports them.
func (c *Container) IntBuffer() *audio.IntBuffer {
	if c == nil || c.Samples == nil {
		return nil
	}

	data := make([]int, c.Samples.Len())
	for i := range data {
		data[i] = c.Samples.Int(i)
	}

	return &audio.IntBuffer{
		Format:         c.PCMFormat(),
		Data:           data,
		SourceBitDepth: int(c.Samples.BitsPerSample()),
	}
}

// Float32Buffer copies the samples into a go-audio float buffer normalized
// to [-1, 1].
func (c *Container) Float32Buffer() *audio.Float32Buffer {
	if c == nil || c.Samples == nil {
		return nil
	}

	bitDepth := int(c.Samples.BitsPerSample())

	data := make([]float32, c.Samples.Len())
	for i := range data {
		data[i] = normalizePCMInt(c.Samples.Int(i), bitDepth)
	}

	return &audio.Float32Buffer{
		Format:         c.PCMFormat(),
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

// NewFromIntBuffer builds a container from a go-audio int buffer, storing
// samples at bitDepth (8, 16 or 32). Values outside the range of the target
// width are clamped.
func NewFromIntBuffer(buf *audio.IntBuffer, bitDepth int) (*Container, error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilBuffer
	}

	samples, err := intsToSamples(buf.Data, bitDepth)
	if err != nil {
		return nil, err
	}

	return newFromBuffer(buf.Format, samples)
}

// NewFromFloat32Buffer builds a container from normalized float samples,
// quantized to bitDepth (8, 16 or 32).
func NewFromFloat32Buffer(buf *audio.Float32Buffer, bitDepth int) (*Container, error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilBuffer
	}

	samples, err := floatsToSamples(buf.Data, bitDepth)
	if err != nil {
		return nil, err
	}

	return newFromBuffer(buf.Format, samples)
}

func newFromBuffer(format *audio.Format, samples Samples) (*Container, error) {
	if format.SampleRate < 0 || int64(format.SampleRate) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", errInvalidSampleRate, format.SampleRate)
	}

	if format.NumChannels < 1 || format.NumChannels > 0xffff {
		return nil, fmt.Errorf("%w: %d", errInvalidChannelCount, format.NumChannels)
	}

	return New(uint32(format.SampleRate), uint16(format.NumChannels), samples)
}
