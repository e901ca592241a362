package suno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractSongID tests the ExtractSongID function.
func TestExtractSongID(t *testing.T) {
	t.Parallel()

	const songID = "0d4e5f6a-1b2c-4d3e-8f9a-0b1c2d3e4f5a"

	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{
			name:     "bare id",
			input:    songID,
			expected: songID,
		},
		{
			name:     "song page link",
			input:    "https://suno.com/song/" + songID,
			expected: songID,
		},
		{
			name:     "legacy app link with query",
			input:    "https://app.suno.ai/song/" + songID + "?sh=abc",
			expected: songID,
		},
		{
			name:     "CDN audio link",
			input:    "https://cdn1.suno.ai/" + songID + ".mp3",
			expected: songID,
		},
		{
			name:     "upper case hex",
			input:    "0D4E5F6A-1B2C-4D3E-8F9A-0B1C2D3E4F5A",
			expected: "0D4E5F6A-1B2C-4D3E-8F9A-0B1C2D3E4F5A",
		},
		{
			name:     "first of two ids",
			input:    songID + " 11111111-2222-3333-4444-555555555555",
			expected: songID,
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
		{
			name:        "too short",
			input:       "0d4e5f6a-1b2c-4d3e-8f9a-0b1c2d3e4f5",
			expectError: true,
		},
		{
			name:        "non-hex characters",
			input:       "0d4e5f6a-1b2c-4d3e-8f9a-0b1c2d3e4fzz",
			expectError: true,
		},
		{
			name:        "wrong grouping",
			input:       "0d4e5f6a1b2c-4d3e-8f9a-0b1c-2d3e4f5a",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			songID, err := ExtractSongID(tt.input)
			if tt.expectError {
				require.ErrorIs(t, err, ErrInvalidSongID)
				assert.Empty(t, songID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, songID)
		})
	}
}
