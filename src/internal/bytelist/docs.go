// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package bytelist parses the bracketed byte-list serialization used to carry
// DER certificates in plain text files.
//
// A single certificate is written as a comma-separated list of decimal byte
// values between square brackets, and a file holds a bracketed list of those:
//
//	group    := "[" (byteList ("," byteList)*)? "]"
//	byteList := "[" (uint8 ("," uint8)*)? "]"
//	uint8    := decimal digits representing 0..=255
//
// The parsers operate on whitespace-free input and report failures as
// [*SyntaxError] values that carry the byte offset of the offending character.
// Callers that accept free-form files are expected to strip whitespace first.
package bytelist
