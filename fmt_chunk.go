package wav

import (
	"fmt"
	"math"

	"github.com/go-audio/riff"
)

// FormatDescriptor stores the parsed fmt chunk of a PCM file.
type FormatDescriptor struct {
	ChunkID     string
	ChunkSize   uint32
	AudioFormat uint16
	NumChannels uint16
	SampleRate  uint32
	// ByteRate and BlockAlign are kept as read from the file. They are only
	// derived from the other fields when a container is built from samples.
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	// Extension holds the bytes following the 16 PCM fields when the chunk
	// declares a larger size, usually a zero cbSize. They are written back
	// as is.
	Extension []byte
}

func newFormatDescriptor(sampleRate uint32, numChans, bitsPerSample uint16) (FormatDescriptor, error) {
	f := FormatDescriptor{
		ChunkID:       string(riff.FmtID[:]),
		ChunkSize:     pcmFmtChunkSize,
		AudioFormat:   wavFormatPCM,
		NumChannels:   numChans,
		SampleRate:    sampleRate,
		BitsPerSample: bitsPerSample,
	}

	var err error

	f.BlockAlign, f.ByteRate, err = f.derivedFields()
	if err != nil {
		return FormatDescriptor{}, err
	}

	return f, nil
}

// Clone returns a deep copy of the descriptor.
func (f *FormatDescriptor) Clone() *FormatDescriptor {
	if f == nil {
		return nil
	}

	out := *f
	if f.Extension != nil {
		out.Extension = append([]byte(nil), f.Extension...)
	}

	return &out
}

// BytesPerSample returns the storage size of one sample of one channel.
func (f FormatDescriptor) BytesPerSample() int {
	return bytesPerSample(int(f.BitsPerSample))
}

// ExpectedBlockAlign is NumChannels × BytesPerSample. The result may not fit
// the 16-bit header field.
func (f FormatDescriptor) ExpectedBlockAlign() uint64 {
	return uint64(f.NumChannels) * uint64(f.BytesPerSample())
}

// ExpectedByteRate is SampleRate × NumChannels × BytesPerSample. The result
// may not fit the 32-bit header field.
func (f FormatDescriptor) ExpectedByteRate() uint64 {
	return uint64(f.SampleRate) * f.ExpectedBlockAlign()
}

// derivedFields returns block align and byte rate narrowed to their header
// widths, or errFieldOverflow if either doesn't fit.
func (f FormatDescriptor) derivedFields() (uint16, uint32, error) {
	blockAlign := f.ExpectedBlockAlign()
	if blockAlign > math.MaxUint16 {
		return 0, 0, fmt.Errorf("%w: block align %d for %d channels of %d bits",
			errFieldOverflow, blockAlign, f.NumChannels, f.BitsPerSample)
	}

	byteRate := f.ExpectedByteRate()
	if byteRate > math.MaxUint32 {
		return 0, 0, fmt.Errorf("%w: byte rate %d at %d Hz", errFieldOverflow, byteRate, f.SampleRate)
	}

	return uint16(blockAlign), uint32(byteRate), nil
}

// chunkSize is the fmt chunk size the encoder writes.
func (f FormatDescriptor) chunkSize() uint64 {
	return pcmFmtChunkSize + uint64(len(f.Extension))
}

func bytesPerSample(bitDepth int) int {
	if bitDepth <= 0 {
		return 0
	}

	return (bitDepth-1)/8 + 1
}
