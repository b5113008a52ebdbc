// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for certlist2pem.
// It implements a Cobra-based CLI that converts byte-list certificate files
// into PEM, JSON, YAML or markdown table reports. Settings come from flags,
// an optional JSON or YAML config file and environment variables, with
// explicitly set flags taking precedence. Diagnostics go to the logger on
// stderr so the report written to stdout stays clean.
package cli
