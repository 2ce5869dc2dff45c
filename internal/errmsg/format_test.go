package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaylistParse,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpPlaylistParse,
			err:      errors.New("unexpected EOF"),
			expected: "Failed to parse playlist: unexpected EOF",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("invalid TOML"),
			expected: "Failed to load config: invalid TOML",
		},
		{
			name:     "output operation",
			op:       OpOutputCreate,
			err:      errors.New("permission denied"),
			expected: "Failed to create output file: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.op, tt.err)
			if got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaylistParse,
			context:  "mix.xspf",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpPlaylistParse,
			context:  "",
			err:      errors.New("unexpected EOF"),
			expected: "Failed to parse playlist: unexpected EOF",
		},
		{
			name:     "context included",
			op:       OpOutputCreate,
			context:  "out.json",
			err:      errors.New("permission denied"),
			expected: "Failed to create output file 'out.json': permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatWith(tt.op, tt.context, tt.err)
			if got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
