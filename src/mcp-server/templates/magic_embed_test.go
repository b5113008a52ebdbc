// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagicEmbed_ReadFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		contains string
		wantErr  bool
	}{
		{name: "grammar", filename: Grammar, contains: "byteList :="},
		{name: "instructions", filename: Instructions, contains: "{{range .Tools}}"},
		{name: "non-existent file", filename: "non-existent.md", wantErr: true},
		{name: "invalid path", filename: "../invalid.md", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MagicEmbed.ReadFile(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.contains)
		})
	}
}

func TestMagicEmbed_ReadDir(t *testing.T) {
	entries, err := MagicEmbed.ReadDir(".")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		assert.False(t, e.IsDir())
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{Grammar, Instructions}, names)
}

func TestMagicEmbed_Open(t *testing.T) {
	f, err := MagicEmbed.Open(Grammar)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)

	want, err := MagicEmbed.ReadFile(Grammar)
	require.NoError(t, err)
	assert.Equal(t, want, data)
}
