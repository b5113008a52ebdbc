// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/certlist2pem/src/config"
	"github.com/H0llyW00dzZ/certlist2pem/src/internal/report"
	"github.com/H0llyW00dzZ/certlist2pem/src/mcp-server/templates"
)

const (
	grammarURI      = "certlist2pem://grammar"
	configSchemaURI = "certlist2pem://config-schema"
	versionURI      = "info://version"
)

// createResources returns the static resources served by the MCP server.
func createResources(fsys templates.EmbedFS, version string) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(grammarURI, "Byte-list input grammar",
				mcp.WithResourceDescription("Grammar, whitespace rules and examples of the byte-list certificate format"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handleGrammarResource(fsys)
			},
		},
		{
			Resource: mcp.NewResource(configSchemaURI, "Configuration schema",
				mcp.WithResourceDescription("JSON Schema of the certlist2pem JSON/YAML config file"),
				mcp.WithMIMEType("application/schema+json"),
			),
			Handler: handleConfigSchemaResource,
		},
		{
			Resource: mcp.NewResource(versionURI, "Version information",
				mcp.WithResourceDescription("Server version and supported output formats"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handleVersionResource(version)
			},
		},
	}
}

func handleGrammarResource(fsys templates.EmbedFS) ([]mcp.ResourceContents, error) {
	content, err := fsys.ReadFile(templates.Grammar)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      grammarURI,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}

func handleConfigSchemaResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      configSchemaURI,
			MIMEType: "application/schema+json",
			Text:     config.Schema(),
		},
	}, nil
}

func handleVersionResource(version string) ([]mcp.ResourceContents, error) {
	tools, toolsWithConfig := createTools()
	names := make([]string, 0, len(tools)+len(toolsWithConfig))
	for _, t := range tools {
		names = append(names, t.Tool.Name)
	}
	for _, t := range toolsWithConfig {
		names = append(names, t.Tool.Name)
	}

	info := map[string]any{
		"name":             serverName,
		"version":          version,
		"tools":            names,
		"resources":        []string{grammarURI, configSchemaURI, versionURI},
		"supportedFormats": report.Formats,
	}

	jsonData, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      versionURI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
