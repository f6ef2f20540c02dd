package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL_Accepted(t *testing.T) {
	valid := []string{
		"https://youtube.com/watch?v=abc",
		"http://example.com/video.mp4",
		"  https://x.com/user/status/123  ",
	}
	for _, url := range valid {
		assert.NoError(t, ValidateURL(url), url)
	}
}

func TestValidateURL_EmptyInput(t *testing.T) {
	assert.ErrorIs(t, ValidateURL(""), ErrEmptyInput)
	assert.ErrorIs(t, ValidateURL("   \t "), ErrEmptyInput)
}

func TestValidateURL_InvalidSyntax(t *testing.T) {
	invalid := []string{
		"not a url",
		"example.com/video",
		"http://",
		"://missing-scheme",
	}
	for _, url := range invalid {
		assert.ErrorIs(t, ValidateURL(url), ErrInvalidURL, url)
	}
}

func TestValidateURL_DisallowedScheme(t *testing.T) {
	tests := []struct {
		url    string
		scheme string
	}{
		{"ftp://x", "ftp"},
		{"javascript:alert(1)", "javascript"},
		{"data:text/html,hi", "data"},
		{"file:///etc/passwd", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateURL(tt.url)
			require.Error(t, err)

			var schemeErr *SchemeError
			require.True(t, errors.As(err, &schemeErr))
			assert.Equal(t, tt.scheme, schemeErr.Scheme)
			assert.Contains(t, err.Error(), tt.scheme)
		})
	}
}
