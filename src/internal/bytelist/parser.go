// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bytelist

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedByteList indicates that a single byte-list literal violates the grammar:
	// a bracket or separator is missing, or an element is not a decimal value in 0..255.
	ErrMalformedByteList = errors.New("bytelist: malformed byte list")

	// ErrMalformedGroup indicates that the outer list of byte lists is structurally broken.
	ErrMalformedGroup = errors.New("bytelist: malformed group")

	// ErrTrailingData indicates content after the closing bracket of the group in strict mode.
	ErrTrailingData = errors.New("bytelist: trailing data after group")
)

// ByteList is one decoded byte-list literal, typically the DER bytes of one certificate.
type ByteList []byte

// Group is an ordered sequence of byte lists as they appear in the source text.
type Group []ByteList

// SyntaxError describes where and why parsing stopped.
//
// Kind is one of [ErrMalformedByteList], [ErrMalformedGroup] or [ErrTrailingData],
// so callers can use [errors.Is] against the sentinels.
type SyntaxError struct {
	Kind     error
	Offset   int
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%v at offset %d: expected %s, found end of input", e.Kind, e.Offset, e.Expected)
	}
	return fmt.Sprintf("%v at offset %d: expected %s, found %q", e.Kind, e.Offset, e.Expected, e.Found)
}

// Unwrap returns the sentinel kind of the error.
func (e *SyntaxError) Unwrap() error { return e.Kind }

// newSyntaxError builds a SyntaxError for input at offset.
func newSyntaxError(kind error, input string, offset int, expected string) *SyntaxError {
	found := ""
	if offset < len(input) {
		found = input[offset : offset+1]
	}
	return &SyntaxError{Kind: kind, Offset: offset, Expected: expected, Found: found}
}

// ParseByteList parses one byte-list literal starting at offset.
//
// It consumes "[", zero or more comma-separated decimal values in 0..255 and "]",
// returning the decoded bytes together with the offset just past the closing bracket.
// Leading zeros are accepted ("007" is 7); signs and whitespace are not.
//
// On failure the returned error is a [*SyntaxError] of kind [ErrMalformedByteList].
func ParseByteList(input string, offset int) (ByteList, int, error) {
	pos := offset
	if pos >= len(input) || input[pos] != '[' {
		return nil, offset, newSyntaxError(ErrMalformedByteList, input, pos, `"["`)
	}
	pos++

	list := ByteList{}
	if pos < len(input) && input[pos] == ']' {
		return list, pos + 1, nil
	}

	for {
		value, next, err := parseUint8(input, pos)
		if err != nil {
			return nil, offset, err
		}
		list = append(list, value)
		pos = next

		if pos >= len(input) {
			return nil, offset, newSyntaxError(ErrMalformedByteList, input, pos, `"," or "]"`)
		}
		switch input[pos] {
		case ',':
			pos++
		case ']':
			return list, pos + 1, nil
		default:
			return nil, offset, newSyntaxError(ErrMalformedByteList, input, pos, `"," or "]"`)
		}
	}
}

// parseUint8 reads a run of decimal digits at offset and checks that it fits in a byte.
func parseUint8(input string, offset int) (byte, int, error) {
	pos := offset
	value := 0
	for pos < len(input) && input[pos] >= '0' && input[pos] <= '9' {
		value = value*10 + int(input[pos]-'0')
		if value > 0xff {
			return 0, offset, newSyntaxError(ErrMalformedByteList, input, offset, "decimal value in 0..255")
		}
		pos++
	}
	if pos == offset {
		return 0, offset, newSyntaxError(ErrMalformedByteList, input, offset, "decimal value in 0..255")
	}
	return byte(value), pos, nil
}

// ParseGroup parses a bracketed, comma-separated list of byte lists starting at offset.
//
// Errors from a nested byte list are returned unchanged, so their kind stays
// [ErrMalformedByteList] and their offset points at the actual failure. Structural
// problems of the outer list are reported with kind [ErrMalformedGroup].
// The returned offset points just past the closing bracket; anything after it is
// left for the caller to inspect.
func ParseGroup(input string, offset int) (Group, int, error) {
	pos := offset
	if pos >= len(input) || input[pos] != '[' {
		return nil, offset, newSyntaxError(ErrMalformedGroup, input, pos, `"["`)
	}
	pos++

	group := Group{}
	if pos < len(input) && input[pos] == ']' {
		return group, pos + 1, nil
	}

	for {
		if pos >= len(input) || input[pos] != '[' {
			return nil, offset, newSyntaxError(ErrMalformedGroup, input, pos, `"[" starting a byte list`)
		}
		list, next, err := ParseByteList(input, pos)
		if err != nil {
			return nil, offset, err
		}
		group = append(group, list)
		pos = next

		if pos >= len(input) {
			return nil, offset, newSyntaxError(ErrMalformedGroup, input, pos, `"," or "]"`)
		}
		switch input[pos] {
		case ',':
			pos++
		case ']':
			return group, pos + 1, nil
		default:
			return nil, offset, newSyntaxError(ErrMalformedGroup, input, pos, `"," or "]"`)
		}
	}
}

// Parse parses a whole group from the start of input.
//
// Content after the closing bracket is ignored; the number of ignored bytes is
// returned so callers can report it. Use [ParseStrict] to reject it instead.
func Parse(input string) (Group, int, error) {
	group, end, err := ParseGroup(input, 0)
	if err != nil {
		return nil, 0, err
	}
	return group, len(input) - end, nil
}

// ParseStrict parses a whole group and fails with [ErrTrailingData] when
// anything follows the closing bracket.
func ParseStrict(input string) (Group, error) {
	group, end, err := ParseGroup(input, 0)
	if err != nil {
		return nil, err
	}
	if end != len(input) {
		return nil, newSyntaxError(ErrTrailingData, input, end, "end of input")
	}
	return group, nil
}
