package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// testHeader describes a canonical header field by field so tests can
// corrupt any of them.
type testHeader struct {
	riffID        string
	riffSize      uint32
	waveID        string
	fmtID         string
	fmtSize       uint32
	audioFormat   uint16
	numChans      uint16
	sampleRate    uint32
	byteRate      uint32
	blockAlign    uint16
	bitsPerSample uint16
	dataID        string
	dataSize      uint32
}

func pcmHeader(numChans uint16, sampleRate uint32, bitsPerSample uint16, dataSize uint32) testHeader {
	blockAlign := numChans * bitsPerSample / 8

	return testHeader{
		riffID:        "RIFF",
		riffSize:      36 + dataSize,
		waveID:        "WAVE",
		fmtID:         "fmt ",
		fmtSize:       16,
		audioFormat:   1,
		numChans:      numChans,
		sampleRate:    sampleRate,
		byteRate:      sampleRate * uint32(blockAlign),
		blockAlign:    blockAlign,
		bitsPerSample: bitsPerSample,
		dataID:        "data",
		dataSize:      dataSize,
	}
}

func (h testHeader) bytes() []byte {
	le := binary.LittleEndian

	out := make([]byte, 0, canonicalHeaderSize)
	out = append(out, h.riffID...)
	out = le.AppendUint32(out, h.riffSize)
	out = append(out, h.waveID...)
	out = append(out, h.fmtID...)
	out = le.AppendUint32(out, h.fmtSize)
	out = le.AppendUint16(out, h.audioFormat)
	out = le.AppendUint16(out, h.numChans)
	out = le.AppendUint32(out, h.sampleRate)
	out = le.AppendUint32(out, h.byteRate)
	out = le.AppendUint16(out, h.blockAlign)
	out = le.AppendUint16(out, h.bitsPerSample)
	out = append(out, h.dataID...)
	out = le.AppendUint32(out, h.dataSize)

	return out
}

func (h testHeader) file(payload []byte) []byte {
	return append(h.bytes(), payload...)
}

type testChunk struct {
	id   string
	size uint32
	data []byte
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

// parseWavChunks walks the top level chunks of an encoded file independently
// of the decoder under test.
func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]testChunk, 0)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		payload := append([]byte(nil), data[offset:end]...)
		chunks = append(chunks, testChunk{id: id, size: size, data: payload})

		offset = end
		if size%2 == 1 {
			offset++
		}
	}

	return chunks, nil
}

func findChunk(chunks []testChunk, id string) *testChunk {
	for i := range chunks {
		if chunks[i].id == id {
			return &chunks[i]
		}
	}

	return nil
}
