package ast

import (
	"fmt"

	"github.com/Zilliqa/rs-scilla-parser/internal/lexer"
)

// ErrorKind classifies why a parse failed. It never changes across a
// given failure mode, so callers can safely switch on it with errors.As.
type ErrorKind int

const (
	// KindIO means the source file could not be read. Wrapped is set.
	KindIO ErrorKind = iota
	// KindLex means the lexer hit an invalid character, an unterminated
	// comment, or an unterminated string.
	KindLex
	// KindUnexpectedToken means the grammar expected a different token
	// than what it found.
	KindUnexpectedToken
	// KindUnexpectedEOF means input ended while a production was open.
	KindUnexpectedEOF
	// KindUnknownType means a type position held a token that cannot
	// begin any type.
	KindUnknownType
	// KindMalformedAddressRefinement means "with" was not followed by
	// "library", "contract", or a well-formed field list terminated by
	// "end".
	KindMalformedAddressRefinement
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "IoError"
	case KindLex:
		return "LexError"
	case KindUnexpectedToken:
		return "UnexpectedToken"
	case KindUnexpectedEOF:
		return "UnexpectedEndOfInput"
	case KindUnknownType:
		return "UnknownType"
	case KindMalformedAddressRefinement:
		return "MalformedAddressRefinement"
	default:
		return "UnknownError"
	}
}

// Error is the single error type returned by every parsing entry point.
// The first error aborts the parse; no partial Contract is ever returned
// alongside a non-nil error.
type Error struct {
	Kind     ErrorKind
	Message  string
	Position lexer.Position
	Wrapped  error // set only for KindIO
}

func (e *Error) Error() string {
	if e.Kind == KindIO {
		return fmt.Sprintf("scilla: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("scilla: %s at %d:%d: %s", e.Kind, e.Position.Line, e.Position.Column, e.Message)
}

func (e *Error) Unwrap() error { return e.Wrapped }

// NewIOError wraps a filesystem or I/O failure that happened before any
// parsing could begin.
func NewIOError(err error) *Error {
	return &Error{Kind: KindIO, Message: err.Error(), Wrapped: err}
}
