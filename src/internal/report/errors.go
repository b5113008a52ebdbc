// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates that the input text is not a valid group of byte lists.
	// The concrete parse failure is available through [MalformedInputError].
	ErrMalformedInput = errors.New("report: malformed input")

	// ErrInvalidCertificate indicates that a decoded byte list is not a valid DER certificate.
	// The failing entry is available through [InvalidCertificateError].
	ErrInvalidCertificate = errors.New("report: invalid certificate")

	// ErrVerifyFailed indicates that the generated PEM bodies did not decode back to the input DER.
	ErrVerifyFailed = errors.New("report: PEM verification failed")

	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("report: unknown output format")
)

// MalformedInputError wraps the parse failure of the input text.
// Both [ErrMalformedInput] and the underlying parser error match with [errors.Is].
type MalformedInputError struct{ Err error }

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMalformedInput, e.Err)
}

// Unwrap returns the sentinel and the parser error.
func (e *MalformedInputError) Unwrap() []error { return []error{ErrMalformedInput, e.Err} }

// InvalidCertificateError identifies the first entry the decoder rejected.
type InvalidCertificateError struct {
	// Index is the 0-based position of the entry in the input group.
	Index int
	Err   error
}

func (e *InvalidCertificateError) Error() string {
	return fmt.Sprintf("%v at index %d: %v", ErrInvalidCertificate, e.Index, e.Err)
}

// Unwrap returns the sentinel and the decoder error.
func (e *InvalidCertificateError) Unwrap() []error { return []error{ErrInvalidCertificate, e.Err} }
