// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/cloudflare/cfssl/helpers"
)

var (
	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParseName indicates that an issuer or subject name is not a well-formed RDN sequence.
	ErrParseName = errors.New("x509certs: failed to parse distinguished name")

	// ErrPEMMismatch indicates that PEM text does not decode back to the expected DER bytes.
	ErrPEMMismatch = errors.New("x509certs: PEM does not match DER input")
)

// Names holds the rendered issuer and subject distinguished names of a certificate.
type Names struct {
	Issuer  string `json:"issuer" yaml:"issuer"`
	Subject string `json:"subject" yaml:"subject"`
}

// Decoder decodes DER encoded [X.509] certificates.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder { return &Decoder{} }

// Decode parses a single DER encoded certificate.
//
// Unlike PEM-aware loaders, it never guesses the input format: anything that is not
// exactly one DER certificate fails with [ErrParseCertificate].
func (d *Decoder) Decode(der []byte) (*x509.Certificate, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseCertificate, err)
	}
	return cert, nil
}

// Names decodes der and renders its issuer and subject.
//
// Attributes are listed in the order they appear in the certificate, for example
// "C=US, O=Google Trust Services, CN=WR2".
//
// Certificates that crypto/x509 rejects but that are structurally sound DER,
// for instance names holding UniversalString or VisibleString values, are
// rendered from their raw issuer and subject fields.
func (d *Decoder) Names(der []byte) (Names, error) {
	var rawIssuer, rawSubject []byte

	cert, err := d.Decode(der)
	if err == nil {
		rawIssuer, rawSubject = cert.RawIssuer, cert.RawSubject
	} else {
		var ok bool
		if rawIssuer, rawSubject, ok = rawNames(der); !ok {
			return Names{}, err
		}
	}

	issuer, err := FormatName(rawIssuer)
	if err != nil {
		return Names{}, fmt.Errorf("%w: issuer: %w", ErrParseCertificate, err)
	}
	subject, err := FormatName(rawSubject)
	if err != nil {
		return Names{}, fmt.Errorf("%w: subject: %w", ErrParseCertificate, err)
	}

	return Names{Issuer: issuer, Subject: subject}, nil
}

// VerifyPEM checks that pemData holds exactly the certificates in ders, in order.
//
// The PEM text is parsed with cfssl's helpers, the same loader used by cfssl
// tooling that consumes bundles, so a successful check means the encoded output
// is accepted downstream. Certificates that loader cannot parse are compared
// block by block instead.
func (d *Decoder) VerifyPEM(pemData []byte, ders [][]byte) error {
	if len(ders) == 0 {
		if len(bytes.TrimSpace(pemData)) != 0 {
			return fmt.Errorf("%w: unexpected PEM data", ErrPEMMismatch)
		}
		return nil
	}

	certs, err := helpers.ParseCertificatesPEM(pemData)
	if err != nil {
		// cfssl parses with crypto/x509; fall back to the block bytes for
		// certificates only Names can read.
		return verifyBlocks(pemData, ders, err)
	}
	if len(certs) != len(ders) {
		return fmt.Errorf("%w: got %d certificates, want %d", ErrPEMMismatch, len(certs), len(ders))
	}

	for i, cert := range certs {
		if !bytes.Equal(cert.Raw, ders[i]) {
			return fmt.Errorf("%w: certificate %d differs", ErrPEMMismatch, i)
		}
	}

	return nil
}

// verifyBlocks compares the CERTIFICATE blocks of pemData with ders byte for byte.
// parseErr is reported when a block is not structurally a certificate.
func verifyBlocks(pemData []byte, ders [][]byte, parseErr error) error {
	rest := bytes.TrimSpace(pemData)
	for i, want := range ders {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil || block.Type != "CERTIFICATE" {
			return fmt.Errorf("%w: %w", ErrPEMMismatch, parseErr)
		}
		if _, _, ok := rawNames(block.Bytes); !ok {
			return fmt.Errorf("%w: %w", ErrPEMMismatch, parseErr)
		}
		if !bytes.Equal(block.Bytes, want) {
			return fmt.Errorf("%w: certificate %d differs", ErrPEMMismatch, i)
		}
	}

	if len(bytes.TrimSpace(rest)) != 0 {
		return fmt.Errorf("%w: got more than %d certificates", ErrPEMMismatch, len(ders))
	}
	return nil
}
