package errors

import (
	"errors"
	"fmt"
)

// Kind classifies how a console command failed
type Kind int

const (
	// KindPrecondition is a local check failure; no backend call was made
	KindPrecondition Kind = iota
	// KindNetwork is a connectivity failure or an unreadable backend response
	KindNetwork
	// KindHTTP is a non-2xx backend response
	KindHTTP
	// KindRejection is a 2xx backend response that semantically failed
	KindRejection
)

func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindRejection:
		return "rejection"
	default:
		return "unknown"
	}
}

// ConsoleError is the error returned by the backend client and console commands
type ConsoleError struct {
	Kind   Kind
	Code   ErrorCode
	Status int
	Detail string
	Err    error
}

func (e *ConsoleError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = GetErrorMessage(e.Code)
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *ConsoleError) Unwrap() error {
	return e.Err
}

// Message returns the backend detail when one was supplied, the fallback otherwise
func (e *ConsoleError) Message(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}

// NewPrecondition creates a precondition error carrying the code's default message
func NewPrecondition(code ErrorCode) *ConsoleError {
	return &ConsoleError{Kind: KindPrecondition, Code: code, Detail: GetErrorMessage(code)}
}

// NewNetwork wraps a transport-level failure
func NewNetwork(err error) *ConsoleError {
	return &ConsoleError{Kind: KindNetwork, Code: BackendUnreachable, Err: err}
}

// NewMalformedResponse wraps a body that could not be decoded
func NewMalformedResponse(status int, err error) *ConsoleError {
	return &ConsoleError{Kind: KindNetwork, Code: BackendMalformedResponse, Status: status, Err: err}
}

// NewHTTP creates an error for a non-2xx backend response; detail may be empty
func NewHTTP(status int, detail string) *ConsoleError {
	return &ConsoleError{Kind: KindHTTP, Code: BackendRejected, Status: status, Detail: detail}
}

// NewRejection creates an application-level rejection; detail may be empty
func NewRejection(code ErrorCode, detail string) *ConsoleError {
	return &ConsoleError{Kind: KindRejection, Code: code, Detail: detail}
}

// AsConsoleError unwraps err into a *ConsoleError when possible
func AsConsoleError(err error) (*ConsoleError, bool) {
	var ce *ConsoleError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsKind reports whether err is a ConsoleError of the given kind
func IsKind(err error, kind Kind) bool {
	ce, ok := AsConsoleError(err)
	return ok && ce.Kind == kind
}
