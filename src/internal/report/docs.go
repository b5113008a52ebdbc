// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report drives the conversion of byte-list certificate files into
// readable reports.
//
// A [Driver] strips whitespace from the input, parses it with package bytelist,
// asks an injected [Decoder] for the issuer and subject of every entry and
// renders the result as PEM (the default), JSON, YAML or a markdown table.
//
// The pipeline aborts on the first failure and never writes partial output:
// the report is rendered into a pooled buffer and copied to the destination
// only once every entry has been decoded.
package report
