// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// tagVersion is the [0] EXPLICIT version field of a TBSCertificate.
var tagVersion = cryptobyte_asn1.Tag(0).Constructed().ContextSpecific()

// rawNames walks the outer structure of a DER certificate and returns its
// encoded issuer and subject Names.
//
// Only the layout is checked: a Certificate SEQUENCE holding a TBSCertificate,
// a signature AlgorithmIdentifier and a BIT STRING, with nothing after it. Field
// contents that crypto/x509 refuses, such as UniversalString attribute values,
// are left to [FormatName].
func rawNames(der []byte) (issuer, subject []byte, ok bool) {
	input := cryptobyte.String(der)

	var cert, tbs cryptobyte.String
	if !input.ReadASN1(&cert, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, nil, false
	}
	if !cert.ReadASN1(&tbs, cryptobyte_asn1.SEQUENCE) ||
		!cert.SkipASN1(cryptobyte_asn1.SEQUENCE) ||
		!cert.SkipASN1(cryptobyte_asn1.BIT_STRING) ||
		!cert.Empty() {
		return nil, nil, false
	}

	var issuerSeq, subjectSeq cryptobyte.String
	if !tbs.SkipOptionalASN1(tagVersion) ||
		!tbs.SkipASN1(cryptobyte_asn1.INTEGER) ||
		!tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) ||
		!tbs.ReadASN1Element(&issuerSeq, cryptobyte_asn1.SEQUENCE) ||
		!tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) ||
		!tbs.ReadASN1Element(&subjectSeq, cryptobyte_asn1.SEQUENCE) ||
		!tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) {
		return nil, nil, false
	}

	return issuerSeq, subjectSeq, true
}
