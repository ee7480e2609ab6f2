package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSourceURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{name: "valid https", url: "https://example.com/article"},
		{name: "valid http with port", url: "http://example.com:8080/a?b=c"},
		{name: "empty", url: "", wantErr: "url is required"},
		{name: "too long", url: "https://example.com/" + strings.Repeat("a", 2100), wantErr: "must not exceed 2048"},
		{name: "ftp scheme", url: "ftp://example.com/file", wantErr: "http or https"},
		{name: "no scheme", url: "example.com/article", wantErr: "http or https"},
		{name: "missing host", url: "https:///path", wantErr: "valid host"},
		{name: "unparsable", url: "http://[::1", wantErr: "url is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourceURL(tt.url)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}
