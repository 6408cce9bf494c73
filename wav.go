package wav

import "time"

const (
	wavFormatPCM = 1

	// canonicalHeaderSize is RIFF(12) + fmt(8+16) + data id and size(8).
	canonicalHeaderSize = 44
	pcmFmtChunkSize     = 16

	dataSizeWidth32 = 4
	dataSizeWidth64 = 8
)

// durationFromBytes converts a payload length to play time using the
// declared byte rate.
func durationFromBytes(size uint64, byteRate uint32) time.Duration {
	if byteRate == 0 {
		return 0
	}

	secs := float64(size) / float64(byteRate)

	return time.Duration(secs * float64(time.Second))
}
