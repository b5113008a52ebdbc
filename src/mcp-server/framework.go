// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/certlist2pem/src/config"
	"github.com/H0llyW00dzZ/certlist2pem/src/mcp-server/templates"
)

// serverName identifies the server to MCP clients.
const serverName = "certlist2pem"

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig defines tool handlers that take their defaults from the server configuration.
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error)

// ToolDefinition holds a tool definition and its handler.
//
// Role names the part the tool plays in the server instructions template.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithConfig holds a tool definition whose handler receives the server configuration.
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	Role    string
}

// ServerDependencies holds all dependencies needed to create the MCP server.
// It is filled by [ServerBuilder] and should not be instantiated directly.
type ServerDependencies struct {
	Config          *config.Config
	Embed           templates.EmbedFS
	Version         string
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion("1.0.0").
//	    WithEmbed(templates.MagicEmbed).
//	    WithDefaultTools().
//	    WithDefaultResources().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration that tool defaults are taken from.
// A nil config is replaced by [config.Default] during Build.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithEmbed sets the template filesystem. When set, Build renders the server
// instructions from it and the default resources serve documents from it.
func (b *ServerBuilder) WithEmbed(fsys templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = fsys
	return b
}

// WithVersion sets the server version reported to clients.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithTools adds tool definitions that don't require configuration access.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tool definitions whose handlers receive the server configuration.
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds resources to the server.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultTools adds every tool created by createTools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	tools, toolsWithConfig := createTools()
	return b.WithTools(tools...).WithToolsWithConfig(toolsWithConfig...)
}

// WithDefaultResources adds the grammar, config schema and version resources.
// It uses the embed filesystem and version set so far, so call it after
// WithEmbed and WithVersion.
func (b *ServerBuilder) WithDefaultResources() *ServerBuilder {
	fsys := b.deps.Embed
	if fsys == nil {
		fsys = templates.MagicEmbed
	}
	return b.WithResources(createResources(fsys, b.deps.Version)...)
}

// serverTools converts the registered definitions into mcp-go server tools,
// binding config-aware handlers to the builder's configuration.
func (b *ServerBuilder) serverTools() []server.ServerTool {
	cfg := b.deps.Config
	if cfg == nil {
		cfg = config.Default()
	}

	tools := make([]server.ServerTool, 0, len(b.deps.Tools)+len(b.deps.ToolsWithConfig))
	for _, tool := range b.deps.Tools {
		tools = append(tools, server.ServerTool{Tool: tool.Tool, Handler: tool.Handler})
	}
	for _, tool := range b.deps.ToolsWithConfig {
		handler := tool.Handler
		tools = append(tools, server.ServerTool{
			Tool: tool.Tool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, request, cfg)
			},
		})
	}
	return tools
}

// Build creates the MCP server with every registered tool and resource.
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	}

	if b.deps.Embed != nil {
		instructions, err := loadInstructions(b.deps.Embed, b.deps.Tools, b.deps.ToolsWithConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to load instructions: %w", err)
		}
		opts = append(opts, server.WithInstructions(instructions))
	}

	s := server.NewMCPServer(serverName, b.deps.Version, opts...)

	if tools := b.serverTools(); len(tools) > 0 {
		s.AddTools(tools...)
	}
	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	return s, nil
}
