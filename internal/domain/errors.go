package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMessageRequired       = errors.New("message required")
	ErrMalformedConversation = errors.New("malformed conversation")
	ErrClientTransport       = errors.New("chat request failed")
)

// ValidationError indica un input invalido del llamador; se responde con 400.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// UpstreamError envuelve cualquier falla del proveedor (red, error del proveedor o respuesta malformada).
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ClientTransportError es la falla del lado cliente al llamar al endpoint.
// StatusCode es 0 cuando la peticion no llego a tener respuesta.
type ClientTransportError struct {
	StatusCode int
	Err        error
}

func (e *ClientTransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: status %d", ErrClientTransport, e.StatusCode)
	}
	return fmt.Sprintf("%v: %v", ErrClientTransport, e.Err)
}

func (e *ClientTransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrClientTransport}
	}
	return []error{ErrClientTransport, e.Err}
}
