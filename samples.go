package wav

import "fmt"

// Samples is the decoded payload of a data chunk. The concrete type is
// chosen by the bit depth of the file and never changes afterwards: PCM8,
// PCM16 or PCM32. Multi-channel audio is interleaved.
type Samples interface {
	// BitsPerSample is 8, 16 or 32.
	BitsPerSample() uint16
	// Len is the number of samples across all channels.
	Len() int
	// Bytes returns the little-endian payload encoding of the samples.
	Bytes() []byte
	// Int returns sample i widened to int. 8-bit samples are unsigned.
	Int(i int) int

	isSamples()
}

// PCM8 holds unsigned 8-bit samples. The raw payload is the sample sequence.
type PCM8 []byte

// PCM16 holds signed 16-bit samples.
type PCM16 []int16

// PCM32 holds signed 32-bit samples.
type PCM32 []int32

func (PCM8) BitsPerSample() uint16  { return 8 }
func (PCM16) BitsPerSample() uint16 { return 16 }
func (PCM32) BitsPerSample() uint16 { return 32 }

func (s PCM8) Len() int  { return len(s) }
func (s PCM16) Len() int { return len(s) }
func (s PCM32) Len() int { return len(s) }

func (s PCM8) Int(i int) int  { return int(s[i]) }
func (s PCM16) Int(i int) int { return int(s[i]) }
func (s PCM32) Int(i int) int { return int(s[i]) }

func (PCM8) isSamples()  {}
func (PCM16) isSamples() {}
func (PCM32) isSamples() {}

// Bytes returns a copy of the samples.
func (s PCM8) Bytes() []byte {
	return append([]byte(nil), s...)
}

func (s PCM16) Bytes() []byte {
	out := make([]byte, 0, len(s)*2)
	for _, v := range s {
		out = append(out, Uint16ToBytesLE(uint16(v))...)
	}

	return out
}

func (s PCM32) Bytes() []byte {
	out := make([]byte, 0, len(s)*4)
	for _, v := range s {
		out = append(out, Uint32ToBytesLE(uint32(v))...)
	}

	return out
}

// samplesFromBytes reinterprets a raw payload according to bitsPerSample.
// The returned samples never alias raw.
func samplesFromBytes(bitsPerSample uint16, raw []byte) (Samples, error) {
	switch bitsPerSample {
	case 8:
		return PCM8(append([]byte(nil), raw...)), nil
	case 16:
		if len(raw)%2 != 0 {
			return nil, misalignedPayload(len(raw), 2)
		}

		out := make(PCM16, len(raw)/2)
		for i := range out {
			out[i] = Int16LE(raw[2*i:])
		}

		return out, nil
	case 32:
		if len(raw)%4 != 0 {
			return nil, misalignedPayload(len(raw), 4)
		}

		out := make(PCM32, len(raw)/4)
		for i := range out {
			out[i] = Int32LE(raw[4*i:])
		}

		return out, nil
	default:
		return nil, unsupportedSampleWidth(int(bitsPerSample))
	}
}

func misalignedPayload(size, width int) *Error {
	return newError(KindTruncatedPayload, CodeTruncatedPayload,
		fmt.Sprintf("payload of %d bytes is not a whole number of %d-byte samples", size, width), nil)
}

func payloadSize(s Samples) uint64 {
	return uint64(s.Len()) * uint64(bytesPerSample(int(s.BitsPerSample())))
}
