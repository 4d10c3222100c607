package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsuehlin/etfcalc/internal/api"
	"github.com/hsuehlin/etfcalc/internal/api/handlers"
	"github.com/hsuehlin/etfcalc/internal/scheduler"
	"github.com/hsuehlin/etfcalc/internal/scheduler/jobs"
	"github.com/hsuehlin/etfcalc/web"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "啟動 API 伺服器",
	Long: `啟動 REST API 伺服器與內建圖表頁面。

Endpoints:
  GET  /                  - 圖表頁面
  GET  /health            - Health check
  GET  /api/etfs          - 上市 ETF 清單
  POST /api/etfs/refresh  - 立即更新 ETF 清單
  GET  /api/jobs          - 排程工作統計
  POST /api/simulate      - 執行定期定額試算

Example:
  go run ./cmd/etfcalc serve
  go run ./cmd/etfcalc serve --port 8080`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "API 伺服器埠號 (預設取 PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.close()

	if servePort != "" {
		a.cfg.Port = servePort
	}

	// Scheduled daily refresh of the listed-ETF catalog
	var sched *scheduler.Scheduler
	if a.cfg.Catalog.RefreshEnabled {
		sched = scheduler.New(a.log)
		job := jobs.NewCatalogRefreshJob(a.catalog, a.twse, a.cfg.Catalog.RefreshSchedule, a.log)
		if err := sched.AddJob(job); err != nil {
			return fmt.Errorf("schedule catalog refresh: %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	simHandler := handlers.NewSimulateHandler(a.runner, a.catalog, a.defaults, a.log)
	etfHandler := handlers.NewETFHandler(a.catalog, sched, a.log)

	router := api.NewRouter(simHandler, etfHandler, web.Handler(), a.log)
	server := api.New(a.cfg, a.log, router)

	go func() {
		if err := server.Start(); err != nil {
			a.log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("\n✅ Server running on http://localhost:%s\n", a.cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	a.log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.log.Info("Server stopped")
	return nil
}
