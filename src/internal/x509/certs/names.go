// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"encoding/asn1"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// String tags that cryptobyte does not name.
const (
	tagNumericString   = cryptobyte_asn1.Tag(asn1.TagNumericString)
	tagGraphicString   = cryptobyte_asn1.Tag(25)
	tagVisibleString   = cryptobyte_asn1.Tag(26)
	tagGeneralString   = cryptobyte_asn1.Tag(asn1.TagGeneralString)
	tagUniversalString = cryptobyte_asn1.Tag(28)
	tagBMPString       = cryptobyte_asn1.Tag(asn1.TagBMPString)
)

// attributeNames maps attribute type OIDs to their conventional short names.
var attributeNames = map[string]string{
	"2.5.4.3":                    "CN",
	"2.5.4.4":                    "surname",
	"2.5.4.5":                    "serialNumber",
	"2.5.4.6":                    "C",
	"2.5.4.7":                    "L",
	"2.5.4.8":                    "ST",
	"2.5.4.9":                    "street",
	"2.5.4.10":                   "O",
	"2.5.4.11":                   "OU",
	"2.5.4.12":                   "title",
	"2.5.4.17":                   "postalCode",
	"2.5.4.42":                   "givenName",
	"2.5.4.97":                   "organizationIdentifier",
	"1.2.840.113549.1.9.1":       "emailAddress",
	"0.9.2342.19200300.100.1.1":  "UID",
	"0.9.2342.19200300.100.1.25": "DC",
}

// FormatName renders a DER encoded X.501 Name.
//
// Relative distinguished names keep their certificate order and are joined by ", ";
// attributes of a multi-valued RDN are joined by " + ". Unknown attribute types are
// printed as dotted OIDs and values of non-string types as "#" followed by hex.
func FormatName(raw []byte) (string, error) {
	input := cryptobyte.String(raw)

	var rdnSeq cryptobyte.String
	if !input.ReadASN1(&rdnSeq, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return "", ErrParseName
	}

	var rdns []string
	for !rdnSeq.Empty() {
		var rdnSet cryptobyte.String
		if !rdnSeq.ReadASN1(&rdnSet, cryptobyte_asn1.SET) {
			return "", ErrParseName
		}

		var atvs []string
		for !rdnSet.Empty() {
			atv, err := readAttribute(&rdnSet)
			if err != nil {
				return "", err
			}
			atvs = append(atvs, atv)
		}
		rdns = append(rdns, strings.Join(atvs, " + "))
	}

	return strings.Join(rdns, ", "), nil
}

// readAttribute reads one AttributeTypeAndValue and renders it as "type=value".
func readAttribute(set *cryptobyte.String) (string, error) {
	var atv cryptobyte.String
	if !set.ReadASN1(&atv, cryptobyte_asn1.SEQUENCE) {
		return "", ErrParseName
	}

	var oid asn1.ObjectIdentifier
	if !atv.ReadASN1ObjectIdentifier(&oid) {
		return "", ErrParseName
	}

	var value cryptobyte.String
	var tag cryptobyte_asn1.Tag
	if !atv.ReadAnyASN1Element(&value, &tag) {
		return "", ErrParseName
	}

	name, ok := attributeNames[oid.String()]
	if !ok {
		name = oid.String()
	}

	return name + "=" + attributeValue(value, tag), nil
}

// attributeValue decodes a directory string, falling back to hex of the full element.
func attributeValue(element cryptobyte.String, tag cryptobyte_asn1.Tag) string {
	raw := []byte(element)

	var content cryptobyte.String
	if !element.ReadASN1(&content, tag) {
		return "#" + hex.EncodeToString(raw)
	}

	switch tag {
	case cryptobyte_asn1.UTF8String, cryptobyte_asn1.PrintableString, cryptobyte_asn1.IA5String,
		cryptobyte_asn1.T61String, tagNumericString, tagGraphicString, tagVisibleString, tagGeneralString:
		return string(content)
	case tagBMPString:
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(content)
		if err == nil {
			return string(decoded)
		}
	case tagUniversalString:
		decoded, err := utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder().Bytes(content)
		if err == nil {
			return string(decoded)
		}
	}

	return "#" + hex.EncodeToString(raw)
}
