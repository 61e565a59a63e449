package ai

import "errors"

// ConfigError reports a permanent gateway misconfiguration: an unsupported
// provider name or a missing API credential. It is raised when the gateway
// is built, before any network call, and is not worth retrying.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// Kind classifies provider runtime failures. Each backend maps its own
// SDK errors onto a Kind so callers never inspect message text.
type Kind int

const (
	KindTransport Kind = iota
	KindEmptyResponse
	KindRateLimited
)

// ProviderError is a runtime failure of a provider call: the request
// failed in transit, was rate limited, or succeeded without usable text.
type ProviderError struct {
	Provider string
	Kind     Kind
	Err      error
}

func (e *ProviderError) Error() string {
	switch e.Kind {
	case KindEmptyResponse:
		return e.Provider + ": provider returned no usable text"
	case KindRateLimited:
		return e.Provider + ": rate limited: " + e.Err.Error()
	default:
		return e.Provider + ": " + e.Err.Error()
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }
