package wav

import (
	"errors"
	"fmt"
)

// ErrorKind classifies codec failures.
type ErrorKind int

const (
	KindMalformedHeader ErrorKind = iota + 1
	KindUnsupportedAudioFormat
	KindTruncatedPayload
	KindUnsupportedSampleWidth
	KindSourceUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedHeader:
		return "malformed header"
	case KindUnsupportedAudioFormat:
		return "unsupported audio format"
	case KindTruncatedPayload:
		return "truncated payload"
	case KindUnsupportedSampleWidth:
		return "unsupported sample width"
	case KindSourceUnavailable:
		return "source unavailable"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// HeaderField names the mandatory tag a MalformedHeader error refers to.
type HeaderField int

const (
	FieldNone HeaderField = iota
	FieldRiff
	FieldWave
	FieldFmt
	FieldData
)

func (f HeaderField) String() string {
	switch f {
	case FieldRiff:
		return "RIFF"
	case FieldWave:
		return "WAVE"
	case FieldFmt:
		return "fmt "
	case FieldData:
		return "data"
	default:
		return ""
	}
}

// Numeric error codes. The values are part of the public contract and must
// not change.
const (
	CodeRiff                   = -1
	CodeFmt                    = -2
	CodeWave                   = -3
	CodeData                   = -4
	CodeUnsupportedAudioFormat = -5
	CodeTruncatedPayload       = -6
	CodeUnsupportedSampleWidth = -7
	CodeSourceUnavailable      = -8
)

var (
	// ErrMalformedHeader matches any error caused by a missing or wrong chunk tag.
	ErrMalformedHeader = &Error{Kind: KindMalformedHeader}
	// ErrUnsupportedAudioFormat matches errors for a format code other than PCM.
	ErrUnsupportedAudioFormat = &Error{Kind: KindUnsupportedAudioFormat, Code: CodeUnsupportedAudioFormat}
	// ErrTruncatedPayload matches errors for a data chunk shorter than declared.
	ErrTruncatedPayload = &Error{Kind: KindTruncatedPayload, Code: CodeTruncatedPayload}
	// ErrUnsupportedSampleWidth matches errors for a bit depth other than 8, 16 or 32.
	ErrUnsupportedSampleWidth = &Error{Kind: KindUnsupportedSampleWidth, Code: CodeUnsupportedSampleWidth}
	// ErrSourceUnavailable matches errors for an input that can't be opened or read.
	ErrSourceUnavailable = &Error{Kind: KindSourceUnavailable, Code: CodeSourceUnavailable}

	// ErrNilContainer is returned when encoding a nil container or one without samples.
	ErrNilContainer = errors.New("can't encode a nil container")

	errInvalidChannelCount = errors.New("channel count must be at least 1")
	errInvalidSampleRate   = errors.New("invalid sample rate")
	errPartialFrame        = errors.New("sample count is not a multiple of the channel count")
	errNilBuffer           = errors.New("can't build a container from a nil buffer")
	errFieldOverflow       = errors.New("derived fmt field doesn't fit its header field")
)

// Error is the single error type returned by the codec.
type Error struct {
	Kind  ErrorKind
	Field HeaderField
	Code  int
	Msg   string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
		if e.Field != FieldNone {
			msg += fmt.Sprintf(" (%q)", e.Field.String())
		}
	}

	if e.Err != nil {
		return fmt.Sprintf("wav: %s: %v", msg, e.Err)
	}

	return "wav: " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. A target without a
// Field matches every field of that kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	if t.Kind != e.Kind {
		return false
	}

	return t.Field == FieldNone || t.Field == e.Field
}

// Code extracts the numeric code of a codec error anywhere in err's chain.
func Code(err error) (int, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}

	return e.Code, true
}

func fieldCode(f HeaderField) int {
	switch f {
	case FieldRiff:
		return CodeRiff
	case FieldFmt:
		return CodeFmt
	case FieldWave:
		return CodeWave
	case FieldData:
		return CodeData
	default:
		return 0
	}
}

func malformedHeader(field HeaderField, msg string, cause error) *Error {
	return &Error{
		Kind:  KindMalformedHeader,
		Field: field,
		Code:  fieldCode(field),
		Msg:   msg,
		Err:   cause,
	}
}

func newError(kind ErrorKind, code int, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Msg: msg, Err: cause}
}

func sourceUnavailable(cause error) *Error {
	return newError(KindSourceUnavailable, CodeSourceUnavailable, "source unavailable", cause)
}

func unsupportedSampleWidth(bitsPerSample int) *Error {
	return newError(KindUnsupportedSampleWidth, CodeUnsupportedSampleWidth,
		fmt.Sprintf("unsupported bits per sample %d, want 8, 16 or 32", bitsPerSample), nil)
}
