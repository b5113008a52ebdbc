// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemblock

import (
	"bytes"
	"encoding/base64"
	"io"
)

const (
	// LineLength is the fixed width of a PEM body line.
	LineLength = 64

	// TypeCertificate is the PEM label used for X.509 certificates.
	TypeCertificate = "CERTIFICATE"
)

// Lines returns the standard base64 encoding of data split into lines of
// [LineLength] characters. Only the last line may be shorter.
//
// Empty input yields no lines at all, not a single empty line.
func Lines(data []byte) []string {
	encoded := base64.StdEncoding.EncodeToString(data)
	if encoded == "" {
		return nil
	}

	lines := make([]string, 0, (len(encoded)+LineLength-1)/LineLength)
	for len(encoded) > LineLength {
		lines = append(lines, encoded[:LineLength])
		encoded = encoded[LineLength:]
	}
	return append(lines, encoded)
}

// BeginMarker returns the opening boundary line for label, without newline.
func BeginMarker(label string) string { return "-----BEGIN " + label + "-----" }

// EndMarker returns the closing boundary line for label, without newline.
func EndMarker(label string) string { return "-----END " + label + "-----" }

// Write frames data as a PEM block with the given label and writes it to w.
// Every line, markers included, is terminated with a newline.
func Write(w io.Writer, label string, data []byte) error {
	if _, err := io.WriteString(w, BeginMarker(label)+"\n"); err != nil {
		return err
	}
	for _, line := range Lines(data) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, EndMarker(label)+"\n")
	return err
}

// Encode returns the PEM block for data as produced by [Write].
func Encode(label string, data []byte) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail
	_ = Write(&buf, label, data)
	return buf.Bytes()
}
