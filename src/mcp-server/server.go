// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/certlist2pem/src/config"
	"github.com/H0llyW00dzZ/certlist2pem/src/logger"
	"github.com/H0llyW00dzZ/certlist2pem/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/certlist2pem/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
// It is the version package default until [Run] is called with another one.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server on stdio.
//
// Configuration is read from the file named by CERTLIST2PEM_CONFIG_FILE, if
// any. Run returns when stdin is closed, the server fails, or SIGINT/SIGTERM
// is received; the latter yields an error wrapping [context.Canceled].
func Run(version string) error {
	return serve(context.Background(), version, os.Stdin, os.Stdout, os.Stderr)
}

// serve runs the server on the given streams until ctx is done or in reaches EOF.
func serve(ctx context.Context, version string, in io.Reader, out, errOut io.Writer) error {
	appVersion = version

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.NewJSONLogger(errOut, cfg.Logging.Silent)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithEmbed(templates.MagicEmbed).
		WithVersion(version).
		WithDefaultTools().
		WithDefaultResources().
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	log.Printf("%s %s serving MCP on stdio (default format %s)", serverName, version, cfg.Output.Format)

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, in, out)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.Println("shutting down")
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
