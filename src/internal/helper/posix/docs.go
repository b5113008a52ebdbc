// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// The package currently resolves the executable name used in CLI usage strings,
// stripping directories and the Windows ".exe" suffix:
//
//   - Linux/macOS: "/usr/bin/certlist2pem" → "certlist2pem"
//   - Windows: "C:\bin\certlist2pem.exe" → "certlist2pem"
//   - Fallback: Empty args → "certlist2pem"
//
// # Usage
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName() + " [flags] INPUT_FILE",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
