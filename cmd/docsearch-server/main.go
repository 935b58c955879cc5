// cmd/docsearch-server/main.go
package main

import (
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"docsearch-mcp/internal/common/config"
	commonhttp "docsearch-mcp/internal/common/http"
	"docsearch-mcp/internal/common/logger"
	"docsearch-mcp/internal/common/observability"
	retrievedocs "docsearch-mcp/internal/tools/retrieve-docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrap := logger.New("info", "json")
		bootstrap.Fatal("config load failed", zap.Error(err))
	}

	level := cfg.Logging.Level
	if cfg.OpenAI.Debug {
		level = "debug"
	}
	zapLog := logger.New(level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting docsearch server",
		zap.String("version", cfg.App.Version),
		zap.String("vectorStoreId", cfg.OpenAI.VectorStoreID),
		zap.Bool("debug", cfg.OpenAI.Debug))

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
			if err := http.ListenAndServe(addr, mux); err != nil {
				zapLog.Warn("metrics listener stopped", zap.Error(err))
			}
		}()
	}

	toolCfg := retrievedocs.NewConfig(cfg.OpenAI.VectorStoreID, cfg.OpenAI.APIKey, cfg.OpenAI.Debug)
	handler := retrievedocs.NewHandler(toolCfg, commonhttp.NewClient(), obs, log)

	s := server.NewMCPServer(cfg.App.Name, cfg.App.Version,
		server.WithToolCapabilities(false))
	s.AddTool(retrievedocs.Tool(), handler.HandleToolCall)

	zapLog.Info("serving MCP over stdio")
	if err := server.ServeStdio(s); err != nil {
		zapLog.Fatal("server stopped", zap.Error(err))
	}
	zapLog.Info("shutdown complete")
}
