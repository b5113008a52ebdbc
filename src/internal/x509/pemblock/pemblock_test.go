// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemblock_test

import (
	"bytes"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/certlist2pem/src/internal/x509/pemblock"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		lineCount int
		lastLen   int
	}{
		{name: "Empty", size: 0, lineCount: 0},
		{name: "One Byte", size: 1, lineCount: 1, lastLen: 4},
		{name: "Just Under One Line", size: 45, lineCount: 1, lastLen: 60},
		{name: "Exactly One Line", size: 48, lineCount: 1, lastLen: 64},
		{name: "One Line Plus One Byte", size: 49, lineCount: 2, lastLen: 4},
		{name: "Exactly Two Lines", size: 96, lineCount: 2, lastLen: 64},
		{name: "Certificate Sized", size: 1115, lineCount: 24, lastLen: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, tt.size)
			for i := range data {
				data[i] = byte(i * 7)
			}

			lines := pemblock.Lines(data)
			require.Len(t, lines, tt.lineCount)

			assert.Equal(t, base64.StdEncoding.EncodeToString(data), strings.Join(lines, ""),
				"lines must concatenate to the base64 encoding")

			for i, line := range lines {
				if i < len(lines)-1 {
					assert.Len(t, line, pemblock.LineLength, "line %d must be full width", i)
				} else {
					assert.LessOrEqual(t, len(line), pemblock.LineLength, "last line too long")
					assert.Len(t, line, tt.lastLen, "last line length")
				}
			}
		})
	}
}

func TestLines_Empty(t *testing.T) {
	assert.Empty(t, pemblock.Lines(nil), "nil input must produce no lines")
	assert.Empty(t, pemblock.Lines([]byte{}), "empty input must produce no lines")
}

func TestLines_Deterministic(t *testing.T) {
	data := []byte("the same input always yields the same lines, no matter how often")
	assert.Equal(t, pemblock.Lines(data), pemblock.Lines(data))
}

func TestEncode_MatchesEncodingPEM(t *testing.T) {
	for _, size := range []int{1, 2, 3, 47, 48, 49, 100, 1024} {
		data := bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, size)[:size]

		expected := pem.EncodeToMemory(&pem.Block{Type: pemblock.TypeCertificate, Bytes: data})
		assert.Equal(t, string(expected), string(pemblock.Encode(pemblock.TypeCertificate, data)), "size %d", size)

		block, rest := pem.Decode(pemblock.Encode(pemblock.TypeCertificate, data))
		require.NotNil(t, block, "size %d", size)
		assert.Empty(t, rest)
		assert.Equal(t, data, block.Bytes)
	}
}

func TestEncode_EmptyBody(t *testing.T) {
	encoded := pemblock.Encode(pemblock.TypeCertificate, nil)
	assert.Equal(t, "-----BEGIN CERTIFICATE-----\n-----END CERTIFICATE-----\n", string(encoded))
}

func TestMarkers(t *testing.T) {
	assert.Equal(t, "-----BEGIN CERTIFICATE-----", pemblock.BeginMarker(pemblock.TypeCertificate))
	assert.Equal(t, "-----END CERTIFICATE-----", pemblock.EndMarker(pemblock.TypeCertificate))
}

// failingWriter fails after n successful writes.
type failingWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

func TestWrite_PropagatesErrors(t *testing.T) {
	data := make([]byte, 100) // two body lines

	for n := range 4 {
		err := pemblock.Write(&failingWriter{n: n}, pemblock.TypeCertificate, data)
		assert.ErrorIs(t, err, errWrite, "failure after %d writes", n)
	}

	assert.NoError(t, pemblock.Write(&failingWriter{n: 4}, pemblock.TypeCertificate, data))
}
