package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/riff"
)

// Decoder reads a single WAV container from a byte stream. The stream is
// consumed in one forward pass and never rewound.
type Decoder struct {
	r io.Reader

	// DataSizeWidth is the width in bytes of the data chunk size field: 4
	// for canonical files, 8 for the wide variant.
	DataSizeWidth int
	// BytesRead counts the bytes consumed from the reader so far.
	BytesRead int64
}

// NewDecoder creates a decoder for the passed reader.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:             r,
		DataSizeWidth: dataSizeWidth32,
	}
}

// Decode decodes bytes holding a complete WAV file.
func Decode(b []byte, opts ...Option) (*Container, error) {
	return DecodeReader(bytes.NewReader(b), opts...)
}

// DecodeReader decodes a WAV file read from r.
func DecodeReader(r io.Reader, opts ...Option) (*Container, error) {
	cfg := newConfig(opts)

	d := NewDecoder(r)
	d.DataSizeWidth = cfg.dataSizeWidth

	return d.Decode()
}

// DecodeFile opens and decodes the file at path. Failing to open the file is
// reported as ErrSourceUnavailable, wrapping the *fs.PathError.
func DecodeFile(path string, opts ...Option) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sourceUnavailable(err)
	}
	defer f.Close()

	return DecodeReader(f, opts...)
}

// Decode reads and validates the RIFF, fmt and data chunks in order and
// loads the whole payload. The first failed check ends decoding; no
// container is returned with an error.
func (d *Decoder) Decode() (*Container, error) {
	if d == nil || d.r == nil {
		return nil, sourceUnavailable(errNilReader)
	}

	sizeWidth := d.DataSizeWidth
	if sizeWidth == 0 {
		sizeWidth = dataSizeWidth32
	}

	if sizeWidth != dataSizeWidth32 && sizeWidth != dataSizeWidth64 {
		return nil, fmt.Errorf("%w: %d", errInvalidDataSizeWidth, sizeWidth)
	}

	c := &Container{origin: OriginDecoded}

	if err := d.readRiffChunk(&c.Riff); err != nil {
		return nil, err
	}

	if err := d.readFmtChunk(&c.Format); err != nil {
		return nil, err
	}

	raw, err := d.readDataChunk(&c.Data, sizeWidth)
	if err != nil {
		return nil, err
	}

	c.Samples, err = samplesFromBytes(c.Format.BitsPerSample, raw)
	if err != nil {
		return nil, err
	}

	return c, nil
}

var (
	errNilReader            = errors.New("can't decode from a nil reader")
	errInvalidDataSizeWidth = errors.New("data size width must be 4 or 8")
)

func (d *Decoder) readRiffChunk(r *RiffDescriptor) error {
	var err error

	r.ChunkID, err = d.readTag(FieldRiff, riff.RiffID)
	if err != nil {
		return err
	}

	r.ChunkSize, err = d.readUint32(FieldRiff, "chunk size")
	if err != nil {
		return err
	}

	r.Format, err = d.readTag(FieldWave, riff.WavFormatID)

	return err
}

func (d *Decoder) readFmtChunk(f *FormatDescriptor) error {
	var err error

	f.ChunkID, err = d.readTag(FieldFmt, riff.FmtID)
	if err != nil {
		return err
	}

	f.ChunkSize, err = d.readUint32(FieldFmt, "chunk size")
	if err != nil {
		return err
	}

	if f.ChunkSize < pcmFmtChunkSize {
		return malformedHeader(FieldFmt,
			fmt.Sprintf("fmt chunk size %d is too small for the %d bytes of PCM fields", f.ChunkSize, pcmFmtChunkSize),
			nil)
	}

	f.AudioFormat, err = d.readUint16(FieldFmt, "audio format")
	if err != nil {
		return err
	}

	if f.AudioFormat != wavFormatPCM {
		return newError(KindUnsupportedAudioFormat, CodeUnsupportedAudioFormat,
			fmt.Sprintf("audio format %d is not linear PCM, compressed audio is not supported", f.AudioFormat), nil)
	}

	if f.NumChannels, err = d.readUint16(FieldFmt, "channels"); err != nil {
		return err
	}

	if f.SampleRate, err = d.readUint32(FieldFmt, "sample rate"); err != nil {
		return err
	}

	if f.ByteRate, err = d.readUint32(FieldFmt, "byte rate"); err != nil {
		return err
	}

	if f.BlockAlign, err = d.readUint16(FieldFmt, "block align"); err != nil {
		return err
	}

	if f.BitsPerSample, err = d.readUint16(FieldFmt, "bits per sample"); err != nil {
		return err
	}

	// some writers append cbSize (and more) to PCM fmt chunks
	if f.ChunkSize > pcmFmtChunkSize {
		var buf bytes.Buffer

		n, err := io.CopyN(&buf, d.r, int64(f.ChunkSize-pcmFmtChunkSize))
		d.BytesRead += n

		if err != nil {
			return d.headerReadErr(FieldFmt, "fmt extension", err)
		}

		f.Extension = buf.Bytes()
	}

	return nil
}

func (d *Decoder) readDataChunk(h *DataDescriptor, sizeWidth int) ([]byte, error) {
	var err error

	h.ChunkID, err = d.readTag(FieldData, riff.DataFormatID)
	if err != nil {
		return nil, err
	}

	if sizeWidth == dataSizeWidth64 {
		b, err := d.readExact(dataSizeWidth64)
		if err != nil {
			return nil, d.headerReadErr(FieldData, "data size", err)
		}

		h.ChunkSize = Uint64LE(b)
	} else {
		size, err := d.readUint32(FieldData, "data size")
		if err != nil {
			return nil, err
		}

		h.ChunkSize = uint64(size)
	}

	return d.readPayload(h.ChunkSize)
}

// readPayload grows its buffer with the data actually present so a bogus
// size field can't force a huge allocation.
func (d *Decoder) readPayload(size uint64) ([]byte, error) {
	if size > math.MaxInt64 {
		return nil, truncatedPayload(size, 0, nil)
	}

	var buf bytes.Buffer

	n, err := io.CopyN(&buf, d.r, int64(size))
	d.BytesRead += n

	switch {
	case err == nil:
		return buf.Bytes(), nil
	case errors.Is(err, io.EOF):
		return nil, truncatedPayload(size, n, io.ErrUnexpectedEOF)
	default:
		return nil, sourceUnavailable(fmt.Errorf("failed to read PCM data: %w", err))
	}
}

func truncatedPayload(declared uint64, got int64, cause error) *Error {
	return newError(KindTruncatedPayload, CodeTruncatedPayload,
		fmt.Sprintf("data chunk declares %d bytes but only %d are available", declared, got), cause)
}

func (d *Decoder) readExact(n int) ([]byte, error) {
	buf := make([]byte, n)

	read, err := io.ReadFull(d.r, buf)
	d.BytesRead += int64(read)

	if err != nil {
		return nil, err
	}

	return buf, nil
}

func (d *Decoder) readTag(field HeaderField, want [4]byte) (string, error) {
	offset := d.BytesRead

	b, err := d.readExact(4)
	if err != nil {
		return "", d.headerReadErr(field, "chunk id", err)
	}

	tag := ASCII(b)
	if tag == string(want[:]) {
		return tag, nil
	}

	var cause error
	if field == FieldRiff {
		cause = riff.ErrFmtNotSupported
	}

	return "", malformedHeader(field,
		fmt.Sprintf("bytes %d-%d did not contain %q, instead it contained %q", offset, offset+3, want[:], tag),
		cause)
}

func (d *Decoder) readUint16(field HeaderField, name string) (uint16, error) {
	b, err := d.readExact(2)
	if err != nil {
		return 0, d.headerReadErr(field, name, err)
	}

	return Uint16LE(b), nil
}

func (d *Decoder) readUint32(field HeaderField, name string) (uint32, error) {
	b, err := d.readExact(4)
	if err != nil {
		return 0, d.headerReadErr(field, name, err)
	}

	return Uint32LE(b), nil
}

// headerReadErr maps a failed header read. Running out of input means the
// chunk is malformed; anything else is the source's fault.
func (d *Decoder) headerReadErr(field HeaderField, name string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return malformedHeader(field,
			fmt.Sprintf("input ended while reading %q %s at byte %d", field.String(), name, d.BytesRead),
			io.ErrUnexpectedEOF)
	}

	return sourceUnavailable(fmt.Errorf("failed to read %s: %w", name, err))
}
