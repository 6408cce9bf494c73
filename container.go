package wav

import (
	"fmt"
	"time"
)

// Origin tells where the header fields of a container come from.
type Origin int

const (
	// OriginSamples containers were built from a sample buffer; their byte
	// rate and block align are derived values.
	OriginSamples Origin = iota
	// OriginDecoded containers were read from a file; their header fields are
	// whatever the file declared.
	OriginDecoded
)

func (o Origin) String() string {
	switch o {
	case OriginSamples:
		return "samples"
	case OriginDecoded:
		return "decoded"
	default:
		return fmt.Sprintf("origin %d", int(o))
	}
}

// Container is an in-memory WAV file: the three chunk descriptors and the
// sample payload. A container is not safe for concurrent mutation.
type Container struct {
	Riff    RiffDescriptor
	Format  FormatDescriptor
	Data    DataDescriptor
	Samples Samples

	origin Origin
}

// New builds a container around samples. The bit depth is taken from the
// sample type; byte rate, block align and the chunk sizes are derived and
// must fit their header fields.
func New(sampleRate uint32, numChans uint16, samples Samples) (*Container, error) {
	if samples == nil {
		return nil, ErrNilContainer
	}

	if numChans < 1 {
		return nil, fmt.Errorf("%w: %d", errInvalidChannelCount, numChans)
	}

	if samples.Len()%int(numChans) != 0 {
		return nil, fmt.Errorf("%w: %d samples for %d channels", errPartialFrame, samples.Len(), numChans)
	}

	bits := samples.BitsPerSample()
	if !supportedBitDepth(bits) {
		return nil, unsupportedSampleWidth(int(bits))
	}

	format, err := newFormatDescriptor(sampleRate, numChans, bits)
	if err != nil {
		return nil, err
	}

	size := payloadSize(samples)

	riffDesc, err := newRiffDescriptor(size, dataSizeWidth32)
	if err != nil {
		return nil, err
	}

	return &Container{
		Riff:    riffDesc,
		Format:  format,
		Data:    newDataDescriptor(size),
		Samples: samples,
		origin:  OriginSamples,
	}, nil
}

// Origin reports whether the container was decoded or built from samples.
func (c *Container) Origin() Origin {
	return c.origin
}

// Frames returns the number of sample frames, one sample per channel each.
func (c *Container) Frames() int {
	if c == nil || c.Samples == nil || c.Format.NumChannels == 0 {
		return 0
	}

	return c.Samples.Len() / int(c.Format.NumChannels)
}

// Duration returns the play time of the payload using the declared byte rate.
func (c *Container) Duration() time.Duration {
	if c == nil {
		return 0
	}

	return durationFromBytes(c.Data.ChunkSize, c.Format.ByteRate)
}

func supportedBitDepth(bits uint16) bool {
	switch bits {
	case 8, 16, 32:
		return true
	default:
		return false
	}
}
