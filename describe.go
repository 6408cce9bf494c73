package wav

import (
	"fmt"
	"strings"
)

// Describe dumps every header field of c: the RIFF block, the fmt block and
// the data block, in that order. Nothing is validated.
func Describe(c *Container) string {
	if c == nil {
		return ""
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "___%s___\n", c.Riff.ChunkID)
	fmt.Fprintf(&sb, "Chunk size: %d\n", c.Riff.ChunkSize)
	fmt.Fprintf(&sb, "Format: %s\n", c.Riff.Format)

	fmt.Fprintf(&sb, "___%s___\n", c.Format.ChunkID)
	fmt.Fprintf(&sb, "Chunk size: %d\n", c.Format.ChunkSize)
	fmt.Fprintf(&sb, "Audio format: %d\n", c.Format.AudioFormat)
	fmt.Fprintf(&sb, "Channels: %d\n", c.Format.NumChannels)
	fmt.Fprintf(&sb, "Sample rate: %d\n", c.Format.SampleRate)
	fmt.Fprintf(&sb, "Byte rate: %d\n", c.Format.ByteRate)
	fmt.Fprintf(&sb, "Block align: %d\n", c.Format.BlockAlign)
	fmt.Fprintf(&sb, "Bits per sample: %d\n", c.Format.BitsPerSample)

	fmt.Fprintf(&sb, "___%s___\n", c.Data.ChunkID)
	fmt.Fprintf(&sb, "Data size: %d\n", c.Data.ChunkSize)

	return sb.String()
}

// String implements the Stringer interface with a one line summary.
func (c *Container) String() string {
	if c == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%d Hz @ %d bits, %d channel(s), %d avg bytes/sec, duration: %s",
		c.Format.SampleRate, c.Format.BitsPerSample, c.Format.NumChannels, c.Format.ByteRate, c.Duration())
}
