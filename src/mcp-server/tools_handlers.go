// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/certlist2pem/src/config"
	"github.com/H0llyW00dzZ/certlist2pem/src/internal/bytelist"
	"github.com/H0llyW00dzZ/certlist2pem/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/certlist2pem/src/internal/report"
	x509certs "github.com/H0llyW00dzZ/certlist2pem/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/certlist2pem/src/logger"
)

// emptyReport is returned instead of an empty text when the input holds no certificates.
const emptyReport = "The certificate list is empty."

// handleConvertByteLists renders byte-list text as a certificate report.
//
// Arguments missing from the request fall back to cfg. Driver failures are
// returned as tool errors carrying the driver's message, so the client sees
// which entry failed. Diagnostics such as ignored trailing text are returned
// as a second text content.
func handleConvertByteLists(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("input parameter required: %v", err)), nil
	}

	format, err := report.ParseFormat(request.GetString("format", cfg.Output.Format))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Each call collects its own diagnostics.
	var notes strings.Builder
	log := logger.NewCLILogger()
	log.SetOutput(&notes)

	decoder := x509certs.New()
	opts := []report.Option{
		report.WithFormat(format),
		report.WithStrict(request.GetBool("strict", cfg.Input.Strict)),
		report.WithLogger(log),
	}
	if request.GetBool("verify", cfg.Output.Verify) {
		opts = append(opts, report.WithVerifier(decoder))
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := report.New(decoder, opts...).Run(ctx, []byte(input), buf); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text := buf.String()
	if text == "" {
		text = emptyReport
	}

	result := mcp.NewToolResultText(text)
	if notes.Len() > 0 {
		result.Content = append(result.Content, mcp.NewTextContent(strings.TrimSpace(notes.String())))
	}
	return result, nil
}

// handleFormatByteLists encodes comma-separated base64 DER blobs as a byte-list group.
//
// Blank input yields the empty group "[]".
func handleFormatByteLists(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	blobs, err := request.RequireString("base64")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("base64 parameter required: %v", err)), nil
	}

	group, err := decodeBlobs(blobs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(bytelist.FormatGroup(group)), nil
}

// decodeBlobs decodes a comma-separated list of standard base64 strings.
// Whitespace around and inside each item is ignored.
func decodeBlobs(blobs string) (bytelist.Group, error) {
	if strings.TrimSpace(blobs) == "" {
		return bytelist.Group{}, nil
	}

	items := strings.Split(blobs, ",")
	group := make(bytelist.Group, 0, len(items))
	for i, item := range items {
		der, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(item), ""))
		if err != nil {
			return nil, fmt.Errorf("item %d is not valid base64: %w", i, err)
		}
		group = append(group, der)
	}
	return group, nil
}
