// Package pngerr defines the closed error taxonomy used across the
// decoder. Every failure that terminates a decode carries one of the
// Kind values below so callers can switch on the failure class instead
// of matching strings.
package pngerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why a decode failed.
type Kind int

const (
	TruncatedStream Kind = iota
	CrcMismatch
	UnsupportedColorType
	UnsupportedBitDepth
	UnsupportedCompressionMethod
	UnsupportedFilterMethod
	UnsupportedInterlaceMethod
	UnsupportedCriticalChunk
	MissingIend
	TrailingData
	MissingPlte
	UnknownFilter
	DimensionsExceedLimit
	InflateError
)

var names = map[Kind]string{
	TruncatedStream:              "TruncatedStream",
	CrcMismatch:                  "CrcMismatch",
	UnsupportedColorType:         "UnsupportedColorType",
	UnsupportedBitDepth:          "UnsupportedBitDepth",
	UnsupportedCompressionMethod: "UnsupportedCompressionMethod",
	UnsupportedFilterMethod:      "UnsupportedFilterMethod",
	UnsupportedInterlaceMethod:   "UnsupportedInterlaceMethod",
	UnsupportedCriticalChunk:     "UnsupportedCriticalChunk",
	MissingIend:                  "MissingIend",
	TrailingData:                 "TrailingData",
	MissingPlte:                  "MissingPlte",
	UnknownFilter:                "UnknownFilter",
	DimensionsExceedLimit:        "DimensionsExceedLimit",
	InflateError:                 "InflateError",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the concrete error type returned by the decoder. It always
// carries a Kind from the taxonomy above, a human-readable message, and
// optionally the underlying cause (I/O error, inflater error, ...).
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("png: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("png: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error with no underlying cause.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a Kind and message to a lower-level cause, keeping the
// cause's stack trace via pkg/errors so `log.Printf("%+v", err)` at the
// call site still shows where the failure originated.
func Wrap(kind Kind, cause error, message string) error {
	return &Error{Kind: kind, Message: message, Cause: errors.WithStack(cause)}
}

// Is reports whether err is a *Error of the given Kind, unwrapping
// through any pkg/errors wrapping in between.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
