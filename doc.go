// Package wav reads and writes canonical RIFF/WAVE files holding linear PCM
// audio.
//
// A file is decoded in one pass into a Container: the RIFF, fmt and data
// chunk descriptors plus the sample payload, typed by bit depth as PCM8,
// PCM16 or PCM32. Encoding is the inverse and writes the 44-byte canonical
// header followed by the little-endian samples.
//
// Decoding is strict. The four chunk tags are checked in order and the first
// mismatch is reported as an *Error carrying a stable numeric code:
//
//	-1 RIFF tag   -2 fmt tag   -3 WAVE tag   -4 data tag
//	-5 non-PCM audio format
//
// Compressed formats and extension chunks (LIST, fact, cue, ...) are not
// supported.
package wav
