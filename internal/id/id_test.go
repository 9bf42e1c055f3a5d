package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		s, err := New()
		require.NoError(t, err)
		assert.Len(t, s, 24)
		assert.True(t, IsValid(s), "generated id must validate: %q", s)
		assert.False(t, seen[s], "duplicate id generated: %q", s)
		seen[s] = true
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"valid lowercase", "111111111111111111111101", true},
		{"valid uppercase", "ABCDEF0123456789ABCDEF01", true},
		{"valid mixed case", "aBcDeF0123456789aBcDeF01", true},
		{"empty", "", false},
		{"too short", "abc123", false},
		{"23 chars", strings.Repeat("a", 23), false},
		{"25 chars", strings.Repeat("a", 25), false},
		{"non-hex char", "zzzzzzzzzzzzzzzzzzzzzzzz", false},
		{"hex with one bad char", "111111111111111111111g01", false},
		{"whitespace", "111111111111111111111101 ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.candidate))
		})
	}
}

func TestNewToken_Prefix(t *testing.T) {
	s, err := NewToken("sess")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "sess-"))
	assert.Greater(t, len(s), len("sess-"))
}
