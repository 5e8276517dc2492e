package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vcstools/commitmsg/internal/config"
	"github.com/vcstools/commitmsg/internal/message"
	"github.com/vcstools/commitmsg/internal/scm"
	"github.com/vcstools/commitmsg/internal/web"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("[Commitmsg Server] Server error: %v", err)
	}
	log.Println("[Commitmsg Server] Server stopped gracefully")
}

func run(ctx context.Context) error {
	// Load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log.Println("[Commitmsg Server] Starting Commit Message MCP Server v1.0.0")
	log.Printf("[Commitmsg Server] Workspace roots: %v", cfg.Roots)
	log.Printf("[Commitmsg Server] Transport: %s", cfg.Transport)

	locator := scm.NewLocator(cfg.Roots)
	handler := NewHandler(message.NewService(locator))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "commitmsg-server",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_commit_message",
		Description: "Read the staged commit message of the current working copy",
	}, handler.HandleReadMessage)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_commit_message",
		Description: "Merge text into the staged commit message (append, prepend, or replace); never discards existing content unless mode is replace",
	}, handler.HandleUpdateMessage)
	log.Println("[Commitmsg Server] Registered tools: read_commit_message, update_commit_message")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("[Commitmsg Server] Received shutdown signal")
		cancel()
	}()

	if cfg.Transport == config.TransportHTTP {
		router := web.NewRouter(server, cfg.AuthSecret)
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Printf("[Commitmsg Server] Starting on http transport at %s...", addr)
		return serveHTTP(ctx, addr, router)
	}

	log.Println("[Commitmsg Server] Starting on stdio transport...")
	return server.Run(ctx, &mcp.StdioTransport{})
}

// serveHTTP runs the HTTP transport until the context is cancelled.
func serveHTTP(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}
