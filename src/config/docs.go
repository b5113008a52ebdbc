// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads certlist2pem settings from a JSON or YAML file.
//
// Defaults are applied first, then the file named by the caller or by the
// CERTLIST2PEM_CONFIG_FILE environment variable, then environment overrides.
// Files are checked against an embedded JSON Schema before they are decoded,
// so typos in keys or unknown formats are reported instead of silently ignored.
package config
