// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pemblock produces the textual [PEM] container for raw DER bytes:
// standard base64 wrapped at 64 characters per line between BEGIN/END markers.
//
// The line sequence is exposed separately from the framing so that report
// writers can interleave their own summary lines with the block.
//
// [PEM]: https://datatracker.ietf.org/doc/html/rfc7468
package pemblock
