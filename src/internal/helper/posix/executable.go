// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// DefaultExecutableName is returned when os.Args carries no program name.
const DefaultExecutableName = "certlist2pem"

// GetExecutableName returns the executable name without directories or ".exe",
// for use in CLI usage strings.
//
// Both '/' and '\' are treated as separators regardless of the current OS, so a
// Windows path seen on a Unix system still yields a clean name.
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return DefaultExecutableName
	}
	return executableName(os.Args[0])
}

func executableName(arg0 string) string {
	parts := strings.FieldsFunc(arg0, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return DefaultExecutableName
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" || name == "." {
		return DefaultExecutableName
	}
	return name
}
