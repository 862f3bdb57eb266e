package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"pawprint/internal/compose"
	"pawprint/internal/embed"
	"pawprint/internal/platform/config"
	"pawprint/internal/platform/health"
	"pawprint/internal/platform/httpserver"
	"pawprint/internal/platform/logger"
	"pawprint/internal/platform/metrics"
	"pawprint/internal/platform/tracer"
	"pawprint/internal/sitedata"
	"pawprint/internal/tenant/resolver"
	"pawprint/internal/tenant/staff"
	"pawprint/internal/tenant/store"
	httptransport "pawprint/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	configPath := flag.String("config", "", "path to optional YAML config file")
	flag.Parse()

	// A missing .env is fine; real deployments use the environment directly.
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	log.Info("initializing pawprint",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"routing_mode", string(cfg.Multitenancy.Mode),
		"isolation", cfg.Multitenancy.Isolation,
		"demo_token", cfg.Embed.DemoEnabled,
	)

	m := metrics.New()

	var source store.Source
	if ep, ok := cfg.Endpoints[config.GroupOrganizations]; ok && ep.BaseURL != "" {
		source = store.NewDirectory(ep)
	} else {
		// No tenant directory configured: every routing key is unresolved,
		// which serves 404s (or denials under isolation) instead of crashing.
		log.Warn("no organizations endpoint configured; tenant resolution will find nothing")
		source = store.NewInMemory()
	}

	res, err := resolver.New(cfg.Multitenancy, source, log)
	if err != nil {
		log.Error("tenant resolver init failed", "error", err)
		os.Exit(1)
	}
	defer res.Close()

	client := sitedata.NewHTTPClient(cfg.Endpoints)
	gateway := sitedata.NewGateway(client, log,
		sitedata.WithMetrics(m),
		sitedata.WithTracer(tracer.NewOTel()),
	)
	engine := compose.NewEngine(log, compose.WithMetrics(m))

	issuer := embed.NewIssuer(cfg.Embed.SigningSecret, cfg.Embed.TokenTTL)
	embedSvc := embed.NewService(issuer, client, log,
		embed.WithMetrics(m),
		embed.WithDemoToken(cfg.Embed.DemoEnabled),
	)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Logger:    log,
		Site:      httptransport.NewSiteHandler(cfg.Multitenancy, res, gateway, engine, log, m),
		Admin:     httptransport.NewAdminHandler(issuer, cfg.AdminKeyHash, cfg.Embed.TokenTTL, log, m),
		Embed:     httptransport.NewEmbedHandler(embedSvc, log, m),
		Health:    health.New(cfg.Environment),
		Staff:     staff.NewTokenService(cfg.StaffSigningKey, 12*time.Hour),
		AdminPath: cfg.Multitenancy.AdminPath,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	if err := httpserver.Shutdown(srv, 10*time.Second); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
