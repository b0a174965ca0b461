package remote

import (
	"errors"
	"fmt"
)

// ErrTransport marks failures where no usable response came back:
// connectivity problems, timeouts and cancelled requests.
var ErrTransport = errors.New("remote: transport failure")

// APIError is a response the server produced but rejected, either a non-2xx
// status or an envelope with success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote: %d %s", e.StatusCode, e.Message)
}

// IsTransport reports whether err came from the transport layer.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// AsAPIError unwraps a server rejection from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
