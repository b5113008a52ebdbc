// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// certlist2pem-mcp serves certlist2pem over the Model Context Protocol on stdio.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/certlist2pem/cmd/certlist2pem-mcp@latest
//
// # Configuration
//
// The server reads the same JSON or YAML config file as the CLI, named by the
// CERTLIST2PEM_CONFIG_FILE environment variable. Its output and input sections
// become the defaults of the convert_byte_lists tool.
//
// An MCP client entry looks like:
//
//	{
//	  "mcpServers": {
//	    "certlist2pem": {
//	      "command": "certlist2pem-mcp",
//	      "env": {"CERTLIST2PEM_CONFIG_FILE": "/etc/certlist2pem.yaml"}
//	    }
//	  }
//	}
package main
