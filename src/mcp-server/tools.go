// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createTools creates and returns all MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - format_byte_lists: encodes base64 DER certificates as byte-list text
//   - convert_byte_lists: renders byte-list text as a certificate report, with
//     defaults taken from the server configuration
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("format_byte_lists",
				mcp.WithDescription("Encode base64 DER certificates as a byte-list certificate file"),
				mcp.WithString("base64",
					mcp.Required(),
					mcp.Description("Comma-separated list of standard base64 encoded DER certificates"),
				),
			),
			Handler: handleFormatByteLists,
			Role:    "formatter",
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("convert_byte_lists",
				mcp.WithDescription("Convert a byte-list certificate file into issuer, subject and PEM report"),
				mcp.WithString("input",
					mcp.Required(),
					mcp.Description("Byte-list text such as [[48,130,...],[48,130,...]]"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'pem', 'json', 'yaml' or 'table' (default: from config, usually pem)"),
					mcp.Enum("pem", "json", "yaml", "table"),
				),
				mcp.WithBoolean("strict",
					mcp.Description("Reject text after the certificate list instead of ignoring it (default: from config)"),
				),
				mcp.WithBoolean("verify",
					mcp.Description("Re-parse the generated PEM bodies before returning them (default: from config)"),
				),
			),
			Handler: handleConvertByteLists,
			Role:    "converter",
		},
	}

	return tools, toolsWithConfig
}
