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
			op:       OpPlaylistLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "playlist load",
			op:       OpPlaylistLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load playlist: file not found",
		},
		{
			name:     "snapshot save",
			op:       OpSnapshotSave,
			err:      errors.New("permission denied"),
			expected: "Failed to save snapshot: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
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
			op:       OpPlaylistLoad,
			context:  "Library.xml",
			err:      nil,
			expected: "",
		},
		{
			name:     "with context",
			op:       OpPlaylistLoad,
			context:  "Library.xml",
			err:      errors.New("invalid plist"),
			expected: "Failed to load playlist 'Library.xml': invalid plist",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpCommonWrite,
			context:  "",
			err:      errors.New("disk full"),
			expected: "Failed to write common tracks: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
