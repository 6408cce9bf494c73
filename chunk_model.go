package wav

import (
	"fmt"
	"math"

	"github.com/go-audio/riff"
)

// RiffDescriptor is the outer RIFF chunk header.
type RiffDescriptor struct {
	ChunkID string
	// ChunkSize is the declared byte count of the file minus the first 8
	// bytes. It is advisory on decode and never bounds later reads.
	ChunkSize uint32
	Format    string
}

// DataDescriptor is the header of the data chunk.
type DataDescriptor struct {
	ChunkID string
	// ChunkSize is the payload length in bytes. It only exceeds 32 bits in
	// files using the 8-byte size field.
	ChunkSize uint64
}

func newRiffDescriptor(dataSize uint64, sizeWidth int) (RiffDescriptor, error) {
	size, err := riffChunkSize(dataSize, sizeWidth, pcmFmtChunkSize)
	if err != nil {
		return RiffDescriptor{}, err
	}

	return RiffDescriptor{
		ChunkID:   string(riff.RiffID[:]),
		ChunkSize: size,
		Format:    string(riff.WavFormatID[:]),
	}, nil
}

func newDataDescriptor(dataSize uint64) DataDescriptor {
	return DataDescriptor{
		ChunkID:   string(riff.DataFormatID[:]),
		ChunkSize: dataSize,
	}
}

// riffChunkSize is everything after the RIFF id and size: the WAVE tag, the
// fmt chunk, the data tag and size field, and the payload. The RIFF size
// field is 4 bytes wide whatever the width of the data size field.
func riffChunkSize(dataSize uint64, sizeWidth int, fmtSize uint64) (uint32, error) {
	overhead := uint64(headerSize(sizeWidth)-8-pcmFmtChunkSize) + fmtSize

	if dataSize > math.MaxUint32 || fmtSize > math.MaxUint32 || overhead+dataSize > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d bytes of data", errPayloadTooLarge, dataSize)
	}

	return uint32(overhead + dataSize), nil
}

func headerSize(sizeWidth int) int {
	return canonicalHeaderSize - dataSizeWidth32 + sizeWidth
}
