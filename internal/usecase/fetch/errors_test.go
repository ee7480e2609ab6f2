package fetch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClientError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "invalid url", err: fmt.Errorf("%w: empty hostname", ErrInvalidURL), want: true},
		{name: "private ip", err: fmt.Errorf("%w: 127.0.0.1", ErrPrivateIP), want: true},
		{name: "timeout", err: ErrTimeout, want: false},
		{name: "body too large", err: ErrBodyTooLarge, want: false},
		{name: "extraction", err: ErrExtractionFailed, want: false},
		{name: "unrelated", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsClientError(tt.err))
		})
	}
}
