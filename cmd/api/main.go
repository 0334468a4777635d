package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"fleetflow/application"
	"fleetflow/auth"
	"fleetflow/config"
	"fleetflow/db"
	"fleetflow/fleet"
	"fleetflow/httpapi"
	"fleetflow/notify"
	"fleetflow/stats"
)

func main() {
	cfgFile := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("bootstrap database pool", zap.Error(err))
	}
	defer pool.Close()

	var notifier notify.Notifier
	if cfg.SMTPAddr != "" && len(cfg.SMTPTo) > 0 {
		notifier = notify.NewSMTP(cfg.SMTPAddr, cfg.SMTPFrom, cfg.SMTPTo)
	} else {
		logger.Info("smtp not configured, submission notifications disabled")
	}

	appSvc := application.NewService(application.NewRepository(pool), notifier, logger).
		WithNotifyTimeout(cfg.NotifyTimeout)
	fleetSvc := fleet.NewService(fleet.NewRepository(pool))
	statsSvc := stats.NewService(stats.NewCounter(pool), logger)
	authSvc := auth.NewService(auth.NewRepository(pool), cfg.JWTSecret, cfg.TokenTTL)

	server := httpapi.NewServer(appSvc, fleetSvc, statsSvc, authSvc, logger)
	router := httpapi.NewRouter(server, httpapi.Options{
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	logger.Info("listening", zap.String("port", cfg.HTTPPort))
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}
