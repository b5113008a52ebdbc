// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes certlist2pem over the Model Context Protocol ([MCP]).
//
// The server speaks MCP on stdio and offers two tools:
//   - convert_byte_lists: renders a byte-list certificate file as a PEM, JSON,
//     YAML or table report
//   - format_byte_lists: turns base64 DER certificates into the byte-list text
//     format, for building fixtures
//
// It also serves the input grammar, the config file schema and version
// information as resources. Servers are assembled with [ServerBuilder]; [Run]
// wires the defaults, loads the shared config file and serves until stdin
// closes or a termination signal arrives. Diagnostics are written to stderr as
// JSON lines so they never mix with protocol traffic on stdout.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
