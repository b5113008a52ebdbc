// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
//
// The files are markdown documents served as resources or rendered into the
// server instructions:
//   - grammar.md: the byte-list input format
//   - instructions.md: a text/template rendered with the registered tools
//
// Example usage:
//
//	import "github.com/H0llyW00dzZ/certlist2pem/src/mcp-server/templates"
//
//	content, err := templates.MagicEmbed.ReadFile("grammar.md")
//	if err != nil {
//		return fmt.Errorf("failed to read grammar: %w", err)
//	}
package templates
