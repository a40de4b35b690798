package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks client input problems.
	ErrValidation = errors.New("validation failed")
	// ErrUpstreamAuth marks a failed catalog token exchange.
	ErrUpstreamAuth = errors.New("upstream auth failed")
	// ErrUpstreamFetch marks a failed catalog lookup.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	// ErrGenerativeService marks a failed call to the generative service.
	ErrGenerativeService = errors.New("generative service failed")
)

// ValidationError describes input that cannot be processed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UpstreamAuthError carries the token endpoint's raw response for diagnosis.
type UpstreamAuthError struct {
	Status int
	Body   string
	Err    error
}

func (e *UpstreamAuthError) Error() string {
	return "catalog auth failed: " + upstreamDetail(e.Status, e.Body, e.Err)
}

func (e *UpstreamAuthError) Is(target error) bool { return target == ErrUpstreamAuth }
func (e *UpstreamAuthError) Unwrap() error        { return e.Err }

// UpstreamFetchError carries the catalog's raw response for diagnosis.
type UpstreamFetchError struct {
	Status int
	Body   string
	Err    error
}

func (e *UpstreamFetchError) Error() string {
	return "failed to fetch playlist: " + upstreamDetail(e.Status, e.Body, e.Err)
}

func (e *UpstreamFetchError) Is(target error) bool { return target == ErrUpstreamFetch }
func (e *UpstreamFetchError) Unwrap() error        { return e.Err }

// GenerativeServiceError reports a non-success reply from a generator.
type GenerativeServiceError struct {
	Provider string
	Status   int
	Body     string
	Err      error
}

func (e *GenerativeServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, upstreamDetail(e.Status, e.Body, e.Err))
}

func (e *GenerativeServiceError) Is(target error) bool { return target == ErrGenerativeService }
func (e *GenerativeServiceError) Unwrap() error        { return e.Err }

func upstreamDetail(status int, body string, err error) string {
	switch {
	case status != 0 && body != "":
		return fmt.Sprintf("status %d: %s", status, body)
	case status != 0 && err != nil:
		return fmt.Sprintf("status %d: %v", status, err)
	case status != 0:
		return fmt.Sprintf("status %d", status)
	case err != nil:
		return err.Error()
	case body != "":
		return body
	default:
		return "unknown error"
	}
}
