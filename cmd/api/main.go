package main

import (
	"context"
	"fmt"
	"time"

	"gene-woofallback/config"
	_ "gene-woofallback/docs" // Swagger docs
	"gene-woofallback/internal/httpserver"
	leadHTTP "gene-woofallback/internal/lead/delivery/http"
	"gene-woofallback/internal/lead/usecase"
	"gene-woofallback/internal/middleware"
	"gene-woofallback/pkg/hook"
	"gene-woofallback/pkg/log"
)

// @title       Gene Woo Fallback API
// @description Stateless decision endpoint classifying inbound lead messages into escalate, reply, or qualified.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Infof(ctx, "Starting %s...", cfg.Service.Name)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Thresholds: debt_high=%d secondary_low=%d mid_appt=[%d,%d]",
		cfg.Rules.DebtHigh, cfg.Rules.SecondaryLow, cfg.Rules.MidApptLow, cfg.Rules.MidApptHigh)

	// 3. Rule engine
	engine := usecase.New(logger, usecase.Config{
		DebtHigh:       cfg.Rules.DebtHigh,
		SecondaryLow:   cfg.Rules.SecondaryLow,
		MidApptLow:     cfg.Rules.MidApptLow,
		MidApptHigh:    cfg.Rules.MidApptHigh,
		CampaignBooked: cfg.Rules.CampaignBooked,
	})

	// 4. Outbound decision webhook (optional)
	hookClient := hook.NewClient(
		cfg.Forward.URL,
		cfg.Forward.Token,
		cfg.Service.Name,
		time.Duration(cfg.Forward.TimeoutSeconds)*time.Second,
	)
	if hookClient.Enabled() {
		logger.Infof(ctx, "Decision forwarding enabled: %s", cfg.Forward.URL)
	} else {
		logger.Info(ctx, "Decision forwarding disabled (no forward.url configured)")
	}

	// 5. Delivery + middleware
	leadHandler := leadHTTP.New(logger, engine, hookClient)
	mw := middleware.New(logger, middleware.Config{
		APIKey:          cfg.Auth.APIKey,
		RateLimitPerMin: cfg.Security.RateLimitPerMin,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ServiceName: cfg.Service.Name,
		LeadHandler: leadHandler,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
