// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bytelist

import (
	"strconv"
	"strings"
)

// Format renders a byte list in its canonical form, e.g. "[48,130,1,10]".
func Format(list ByteList) string {
	var b strings.Builder
	writeList(&b, list)
	return b.String()
}

// FormatGroup renders a group in its canonical form, e.g. "[[1,2],[3]]".
// The output parses back to the same group.
func FormatGroup(group Group) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, list := range group {
		if i > 0 {
			b.WriteByte(',')
		}
		writeList(&b, list)
	}
	b.WriteByte(']')
	return b.String()
}

func writeList(b *strings.Builder, list ByteList) {
	b.WriteByte('[')
	for i, v := range list {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteByte(']')
}
