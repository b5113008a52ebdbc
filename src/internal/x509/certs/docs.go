// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs decodes DER encoded [X.509] certificates and renders their
// issuer and subject names for human-readable reports.
//
// Names are read straight from the raw RDN sequence with [cryptobyte] so that
// attribute order is preserved exactly as it appears in the certificate.
// BMPString and UniversalString values are decoded with [golang.org/x/text].
// [Decoder.VerifyPEM] re-reads generated PEM bundles with [cfssl] helpers to
// confirm they round-trip to the original DER bytes.
//
// [X.509]: https://grokipedia.com/page/X.509
// [cryptobyte]: https://pkg.go.dev/golang.org/x/crypto/cryptobyte
// [golang.org/x/text]: https://pkg.go.dev/golang.org/x/text
// [cfssl]: https://github.com/cloudflare/cfssl
package x509certs
