package wav

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
)

// Encoder writes a container as a canonical WAV file.
type Encoder struct {
	w io.Writer

	// DataSizeWidth is the width in bytes of the data chunk size field: 4
	// for canonical files, 8 for the wide variant.
	DataSizeWidth int
	// Policy decides whether byte rate and block align are written as stored
	// or recomputed.
	Policy HeaderPolicy

	WrittenBytes int
	wroteHeader  bool
}

// NewEncoder creates an encoder writing to w. Nothing is written until
// Encode is called.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:             w,
		DataSizeWidth: dataSizeWidth32,
	}
}

// Encode serializes c to a byte slice.
func Encode(c *Container, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer

	if err := newEncoderWithConfig(&buf, newConfig(opts)).Encode(c); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeFile writes c to a new file at path, truncating any existing file.
func EncodeFile(path string, c *Container, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)

	if err := newEncoderWithConfig(bw, newConfig(opts)).Encode(c); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return nil
}

func newEncoderWithConfig(w io.Writer, cfg config) *Encoder {
	e := NewEncoder(w)
	e.DataSizeWidth = cfg.dataSizeWidth
	e.Policy = cfg.policy

	return e
}

var (
	errAlreadyWroteHdr  = errors.New("already wrote header")
	errNilWriter        = errors.New("can't write to a nil writer")
	errPayloadTooLarge  = errors.New("payload too large for the 4-byte RIFF size field")
	errBitDepthMismatch = errors.New("bits per sample doesn't match the sample buffer")
)

// AddLE serializes and adds the passed value using little endian.
func (e *Encoder) AddLE(src any) error {
	e.WrittenBytes += binary.Size(src)

	err := binary.Write(e.w, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// AddBE serializes and adds the passed value using big endian.
func (e *Encoder) AddBE(src any) error {
	e.WrittenBytes += binary.Size(src)

	err := binary.Write(e.w, binary.BigEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write big endian: %w", err)
	}

	return nil
}

func (e *Encoder) addBytes(b []byte) error {
	n, err := e.w.Write(b)
	e.WrittenBytes += n

	if err != nil {
		return fmt.Errorf("failed to write %d bytes: %w", len(b), err)
	}

	return nil
}

// Encode writes the RIFF header, the fmt chunk, the data chunk header and
// the payload, in the same field order the decoder reads them.
func (e *Encoder) Encode(c *Container) error {
	if e == nil || e.w == nil {
		return errNilWriter
	}

	if e.wroteHeader {
		return errAlreadyWroteHdr
	}

	if c == nil || c.Samples == nil {
		return ErrNilContainer
	}

	bits := c.Samples.BitsPerSample()
	if !supportedBitDepth(bits) {
		return unsupportedSampleWidth(int(bits))
	}

	if c.Format.BitsPerSample != bits {
		return newError(KindUnsupportedSampleWidth, CodeUnsupportedSampleWidth,
			fmt.Sprintf("fmt chunk declares %d bits per sample, samples are %d-bit", c.Format.BitsPerSample, bits),
			errBitDepthMismatch)
	}

	payload := c.Samples.Bytes()

	if err := e.writeHeader(c.Format, uint64(len(payload)), c.origin); err != nil {
		return err
	}

	if err := e.addBytes(payload); err != nil {
		return fmt.Errorf("error encoding the PCM data - %w", err)
	}

	return nil
}

// WriteHeader writes only the header for a payload of dataSize bytes that
// the caller then writes to the underlying writer. The format is treated
// like one built from samples: PolicyAuto recomputes byte rate and block
// align. The audio format is always written as PCM.
func (e *Encoder) WriteHeader(f FormatDescriptor, dataSize uint64) error {
	if e == nil || e.w == nil {
		return errNilWriter
	}

	return e.writeHeader(f, dataSize, OriginSamples)
}

// writeHeader validates every header field before the first byte is written.
func (e *Encoder) writeHeader(f FormatDescriptor, dataSize uint64, origin Origin) error {
	if e.wroteHeader {
		return errAlreadyWroteHdr
	}

	if !supportedBitDepth(f.BitsPerSample) {
		return unsupportedSampleWidth(int(f.BitsPerSample))
	}

	sizeWidth := e.DataSizeWidth
	if sizeWidth == 0 {
		sizeWidth = dataSizeWidth32
	}

	if sizeWidth != dataSizeWidth32 && sizeWidth != dataSizeWidth64 {
		return fmt.Errorf("%w: %d", errInvalidDataSizeWidth, sizeWidth)
	}

	riffSize, err := riffChunkSize(dataSize, sizeWidth, f.chunkSize())
	if err != nil {
		return err
	}

	blockAlign, byteRate := f.BlockAlign, f.ByteRate
	if e.Policy.recompute(origin) {
		blockAlign, byteRate, err = f.derivedFields()
		if err != nil {
			return err
		}
	}

	e.wroteHeader = true

	if err := e.writeRiffChunk(riffSize); err != nil {
		return err
	}

	if err := e.writeFmtChunk(f, byteRate, blockAlign); err != nil {
		return err
	}

	return e.writeDataHeader(dataSize, sizeWidth)
}

func (e *Encoder) writeRiffChunk(riffSize uint32) error {
	err := e.AddBE(riff.RiffID)
	if err != nil {
		return err
	}

	err = e.addBytes(Uint32ToBytesLE(riffSize))
	if err != nil {
		return fmt.Errorf("error encoding the riff chunk size - %w", err)
	}

	return e.AddBE(riff.WavFormatID)
}

func (e *Encoder) writeFmtChunk(f FormatDescriptor, byteRate uint32, blockAlign uint16) error {
	err := e.AddBE(riff.FmtID)
	if err != nil {
		return err
	}

	err = e.addBytes(Uint32ToBytesLE(uint32(f.chunkSize())))
	if err != nil {
		return err
	}

	err = e.addBytes(Uint16ToBytesLE(wavFormatPCM))
	if err != nil {
		return err
	}

	err = e.addBytes(Uint16ToBytesLE(f.NumChannels))
	if err != nil {
		return fmt.Errorf("error encoding the number of channels - %w", err)
	}

	err = e.addBytes(Uint32ToBytesLE(f.SampleRate))
	if err != nil {
		return fmt.Errorf("error encoding the sample rate - %w", err)
	}

	err = e.addBytes(Uint32ToBytesLE(byteRate))
	if err != nil {
		return fmt.Errorf("error encoding the byte rate - %w", err)
	}

	err = e.addBytes(Uint16ToBytesLE(blockAlign))
	if err != nil {
		return err
	}

	err = e.addBytes(Uint16ToBytesLE(f.BitsPerSample))
	if err != nil {
		return fmt.Errorf("error encoding bits per sample - %w", err)
	}

	if len(f.Extension) > 0 {
		err = e.addBytes(f.Extension)
		if err != nil {
			return fmt.Errorf("error encoding the fmt extension - %w", err)
		}
	}

	return nil
}

func (e *Encoder) writeDataHeader(dataSize uint64, sizeWidth int) error {
	err := e.AddBE(riff.DataFormatID)
	if err != nil {
		return fmt.Errorf("error encoding sound header %w", err)
	}

	size := Uint32ToBytesLE(uint32(dataSize))
	if sizeWidth == dataSizeWidth64 {
		size = Uint64ToBytesLE(dataSize)
	}

	err = e.addBytes(size)
	if err != nil {
		return fmt.Errorf("%w when writing wav data chunk size header", err)
	}

	return nil
}
