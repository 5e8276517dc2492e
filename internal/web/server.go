// Package web serves the MCP endpoint over HTTP for deployments where
// the agent connects remotely instead of over stdio.
package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewRouter builds the HTTP surface: a health probe and the streamable
// MCP endpoint. When secret is non-empty the MCP endpoint requires a
// bearer JWT signed with it.
func NewRouter(server *mcp.Server, secret string) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", handleHealth).Methods("GET")

	var endpoint http.Handler = mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	if secret != "" {
		endpoint = RequireBearerJWT(secret, endpoint)
	}
	r.PathPrefix("/mcp").Handler(endpoint)

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
