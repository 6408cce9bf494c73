package wav

import "math"

const (
	maxPCMInt8Unsigned = 255
	scalePCMInt16      = 32768.0
	scalePCMInt32      = 2147483648.0
	floatPCM8Center    = 127.5
	floatPCM8Scale     = 127.5
	maxPCMInt16        = 32767
	maxPCMInt32        = 2147483647
)

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// normalizePCMInt maps a stored sample to [-1, 1]. 8-bit samples are
// unsigned and centered on 127.5.
func normalizePCMInt(sample int, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32((float64(sample) - floatPCM8Center) / floatPCM8Scale)
	case 16:
		return float32(float64(sample) / scalePCMInt16)
	case 32:
		return float32(float64(sample) / scalePCMInt32)
	default:
		return 0
	}
}

func float32ToPCMUint8(value float32) uint8 {
	value = clampFloat32(value, -1, 1)

	scaled := int(math.Round(float64((value + 1.0) * floatPCM8Scale)))
	if scaled < 0 {
		return 0
	}

	if scaled > maxPCMInt8Unsigned {
		return maxPCMInt8Unsigned
	}

	return uint8(scaled)
}

func float32ToPCMInt32(value float32, bitDepth int) int32 {
	value = clampFloat32(value, -1, 1)

	switch bitDepth {
	case 16:
		return clampScaledPCM(value, scalePCMInt16, maxPCMInt16)
	case 32:
		return clampScaledPCM(value, scalePCMInt32, maxPCMInt32)
	default:
		return 0
	}
}

func clampScaledPCM(value float32, scale float64, max int64) int32 {
	sample := min(int64(math.Round(float64(value)*scale)), max)
	if lo := int64(-scale); sample < lo {
		sample = lo
	}

	return int32(sample)
}

// floatsToSamples quantizes normalized floats to the requested bit depth.
func floatsToSamples(data []float32, bitDepth int) (Samples, error) {
	switch bitDepth {
	case 8:
		out := make(PCM8, len(data))
		for i, v := range data {
			out[i] = float32ToPCMUint8(v)
		}

		return out, nil
	case 16:
		out := make(PCM16, len(data))
		for i, v := range data {
			out[i] = int16(float32ToPCMInt32(v, 16))
		}

		return out, nil
	case 32:
		out := make(PCM32, len(data))
		for i, v := range data {
			out[i] = float32ToPCMInt32(v, 32)
		}

		return out, nil
	default:
		return nil, unsupportedSampleWidth(bitDepth)
	}
}

// intsToSamples narrows go-audio int samples to the requested bit depth.
// Out of range values are clamped.
func intsToSamples(data []int, bitDepth int) (Samples, error) {
	switch bitDepth {
	case 8:
		out := make(PCM8, len(data))
		for i, v := range data {
			out[i] = uint8(min(max(v, 0), maxPCMInt8Unsigned))
		}

		return out, nil
	case 16:
		out := make(PCM16, len(data))
		for i, v := range data {
			out[i] = int16(min(max(v, -maxPCMInt16-1), maxPCMInt16))
		}

		return out, nil
	case 32:
		out := make(PCM32, len(data))
		for i, v := range data {
			out[i] = int32(min(max(v, -maxPCMInt32-1), maxPCMInt32))
		}

		return out, nil
	default:
		return nil, unsupportedSampleWidth(bitDepth)
	}
}
