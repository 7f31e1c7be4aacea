package repositories

import "fmt"

// ConfigError means the lookup cannot be attempted with the current
// configuration.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// NotFoundError is any provider answer whose status code is not 200. Message
// is the provider's own text.
type NotFoundError struct {
	Code    int
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("provider rejected lookup (code %d): %s", e.Code, e.Message)
}

// MalformedResponseError is a success response that cannot be normalized.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed provider response: %s: %v", e.Reason, e.Err)
	}
	return "malformed provider response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// NetworkError wraps transport failures, including cancellation and timeouts.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("weather request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
