package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrEmptyInput signals that the submitted input was empty after trimming.
// Callers treat it as a silent no-op rather than a surfaced error.
var ErrEmptyInput = errors.New("empty input")

// ErrInvalidURL signals input that does not parse as an absolute URL
var ErrInvalidURL = errors.New("please enter a valid URL")

// SchemeError rejects a URL whose scheme is not http or https
type SchemeError struct {
	Scheme string
}

func (e *SchemeError) Error() string {
	return fmt.Sprintf("unsupported URL scheme %q: only http and https are allowed", e.Scheme)
}

// ValidateURL accepts a candidate only if it parses as an absolute URL with
// an http or https scheme. It runs synchronously and never touches the
// network; rejected input must not produce a request.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrEmptyInput
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURL
	}
	if !u.IsAbs() {
		return ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &SchemeError{Scheme: u.Scheme}
	}
	if u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}
