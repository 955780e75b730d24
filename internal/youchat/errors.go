package youchat

import "fmt"

// InvalidModelError reports a model outside the service catalog. Validation
// runs before any network traffic, so a request that would carry an unknown
// model never leaves the process.
type InvalidModelError struct {
	Model Model
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("model %q is not available", string(e.Model))
}

// InvalidChatModeError reports a chat mode outside the service catalog.
type InvalidChatModeError struct {
	Mode ChatMode
}

func (e *InvalidChatModeError) Error() string {
	return fmt.Sprintf("chat mode %q is not available", string(e.Mode))
}

// TransportError wraps any failure talking to the service: dial errors,
// non-200 statuses, reads that die mid-stream, and cancellation. Malformed
// stream frames are not transport errors; the decoder skips those silently.
type TransportError struct {
	// StatusCode is zero when no HTTP response was received.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("streaming search: status %d: %v", e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("streaming search: status %d", e.StatusCode)
	default:
		return fmt.Sprintf("streaming search: %v", e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }
