package repository

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a source fetch failed.
type ErrorKind string

const (
	// KindConfiguration means a required credential is missing. No
	// network call was attempted.
	KindConfiguration ErrorKind = "configuration"
	// KindUpstream means the network call failed or returned a
	// non-success status.
	KindUpstream ErrorKind = "upstream"
	// KindParse means the provider returned a structurally unexpected
	// payload. Propagates the same way as KindUpstream.
	KindParse ErrorKind = "parse"
)

// SourceError is the single error type adapters raise. The orchestrator
// clears the affected cache and wraps it; the HTTP layer never exposes
// its contents.
type SourceError struct {
	Kind   ErrorKind
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s error: %v", e.Source, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s error", e.Source, e.Kind)
}

func (e *SourceError) Unwrap() error { return e.Err }

// ConfigurationError reports a missing credential for source.
func ConfigurationError(source, detail string) *SourceError {
	return &SourceError{Kind: KindConfiguration, Source: source, Err: fmt.Errorf("%s", detail)}
}

// UpstreamError wraps a failed provider call.
func UpstreamError(source string, err error) *SourceError {
	return &SourceError{Kind: KindUpstream, Source: source, Err: err}
}

// ParseError wraps an unexpected provider payload.
func ParseError(source string, err error) *SourceError {
	return &SourceError{Kind: KindParse, Source: source, Err: err}
}

// KindOf extracts the error kind, defaulting to upstream for errors
// that did not originate in an adapter.
func KindOf(err error) ErrorKind {
	var se *SourceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUpstream
}
