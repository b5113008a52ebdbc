// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/H0llyW00dzZ/certlist2pem/src/internal/bytelist"
	"github.com/H0llyW00dzZ/certlist2pem/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/certlist2pem/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/certlist2pem/src/internal/x509/pemblock"
	"github.com/H0llyW00dzZ/certlist2pem/src/logger"
)

// Decoder turns DER bytes into issuer and subject names.
// It fails when the bytes are not a valid certificate.
type Decoder interface {
	Names(der []byte) (x509certs.Names, error)
}

// Verifier checks that a PEM bundle decodes to exactly the given DER certificates.
type Verifier interface {
	VerifyPEM(pemData []byte, ders [][]byte) error
}

// Entry is one decoded certificate of the input group.
type Entry struct {
	Index   int
	Issuer  string
	Subject string
	DER     []byte
}

// Driver converts byte-list text into certificate reports.
//
// A Driver holds no state between calls and may be reused.
type Driver struct {
	decoder  Decoder
	verifier Verifier
	format   Format
	strict   bool
	log      logger.Logger
}

// Option configures a [Driver].
type Option func(*Driver)

// WithFormat selects the output format. The default is [FormatPEM].
func WithFormat(f Format) Option { return func(d *Driver) { d.format = f } }

// WithStrict makes content after the closing bracket of the group a malformed input.
func WithStrict(strict bool) Option { return func(d *Driver) { d.strict = strict } }

// WithVerifier enables re-reading the generated PEM bodies before anything is written.
func WithVerifier(v Verifier) Option { return func(d *Driver) { d.verifier = v } }

// WithLogger sets the destination for diagnostics. Reports never go to the logger.
func WithLogger(l logger.Logger) Option { return func(d *Driver) { d.log = l } }

// New creates a Driver that uses decoder for certificate names.
func New(decoder Decoder, opts ...Option) *Driver {
	d := &Driver{
		decoder: decoder,
		format:  FormatPEM,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// StripWhitespace removes every Unicode whitespace character from input.
//
// Whitespace inside a number is removed too, so "1 2" becomes "12".
func StripWhitespace(input []byte) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(input))
}

// Collect parses input and decodes every entry, in order.
//
// It stops at the first failure: a parse error yields a [*MalformedInputError],
// a rejected certificate an [*InvalidCertificateError]. No entries are returned
// on failure.
func (d *Driver) Collect(ctx context.Context, input []byte) ([]Entry, error) {
	cleaned := StripWhitespace(input)

	var (
		group bytelist.Group
		err   error
	)
	if d.strict {
		group, err = bytelist.ParseStrict(cleaned)
	} else {
		var ignored int
		group, ignored, err = bytelist.Parse(cleaned)
		if err == nil && ignored > 0 {
			d.logf("ignoring %d byte(s) after the certificate list", ignored)
		}
	}
	if err != nil {
		return nil, &MalformedInputError{Err: err}
	}

	entries := make([]Entry, 0, len(group))
	for i, der := range group {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		names, err := d.decoder.Names(der)
		if err != nil {
			return nil, &InvalidCertificateError{Index: i, Err: err}
		}

		entries = append(entries, Entry{
			Index:   i,
			Issuer:  names.Issuer,
			Subject: names.Subject,
			DER:     der,
		})
	}

	d.logf("decoded %d certificate(s)", len(entries))
	return entries, nil
}

// Run converts input and writes the report to w.
//
// The whole report is rendered in memory first; on any failure nothing is
// written to w.
func (d *Driver) Run(ctx context.Context, input []byte, w io.Writer) error {
	entries, err := d.Collect(ctx, input)
	if err != nil {
		return err
	}

	if d.verifier != nil {
		if err := d.verify(entries); err != nil {
			return err
		}
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := Render(buf, d.format, entries); err != nil {
		return err
	}

	_, err = buf.WriteTo(w)
	return err
}

// verify re-reads the PEM encoding of entries and compares it with their DER bytes.
func (d *Driver) verify(entries []Entry) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	ders := make([][]byte, len(entries))
	for i, e := range entries {
		ders[i] = e.DER
		if err := pemblock.Write(buf, pemblock.TypeCertificate, e.DER); err != nil {
			return err
		}
	}

	if err := d.verifier.VerifyPEM(buf.Bytes(), ders); err != nil {
		return fmt.Errorf("%w: %w", ErrVerifyFailed, err)
	}
	return nil
}

func (d *Driver) logf(format string, v ...any) {
	if d.log != nil {
		d.log.Printf(format, v...)
	}
}
