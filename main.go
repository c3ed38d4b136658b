// jdprep — deterministic JD analysis MCP server.
//
// Ingests a job description plus optional company/role strings and
// derives a categorized skill set, a readiness score, a round-wise
// checklist, a 7-day study plan, and likely interview questions — all
// from static rule catalogs, no network, no models. Analyses persist
// to a local SQLite history by default; DATABASE_URL or REDIS_URL
// select Postgres or Redis instead.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jdprep/jdprep/internal/analyzer"
	"github.com/jdprep/jdprep/internal/history"
	"github.com/jdprep/jdprep/internal/prepserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	ctx := context.Background()

	store, err := history.Open(ctx, history.Config{
		DatabaseURL: env.Str("DATABASE_URL", ""),
		RedisURL:    env.Str("REDIS_URL", ""),
		SQLitePath:  env.Str("JDPREP_DB_PATH", defaultDBPath()),
	})
	if err != nil {
		slog.Error("history store init failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer store.Close()

	slog.Info("starting jdprep", slog.String("port", mcpPort))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "jdprep",
		Version: version,
	}, nil)

	prepserver.RegisterTools(server, store)
	slog.Info("tools registered", slog.Int("count", 6))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "jdprep",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 60 * time.Second,
		Metrics:      analyzer.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func defaultDBPath() string {
	return filepath.Join(os.Getenv("HOME"), ".jdprep", "history.db")
}
