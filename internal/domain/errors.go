package domain

import "errors"

// Kind classifies a pipeline failure so callers can map it to a transport
// status without string-matching messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindInput
	KindAuth
	KindIndexing
	KindRetrieval
	KindSynthesis
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindAuth:
		return "auth"
	case KindIndexing:
		return "indexing"
	case KindRetrieval:
		return "retrieval"
	case KindSynthesis:
		return "synthesis"
	}
	return "unknown"
}

// Error carries a failure kind alongside a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// E creates an Error of the given kind.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap annotates err with a kind and message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the Kind carried by err, or KindUnknown when err does not
// wrap a domain Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
