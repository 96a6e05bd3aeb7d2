package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/configs"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/logger"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/mailer"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/routes"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/ws"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file to load before the environment")
	seed := pflag.Bool("seed", false, "load the catalog seed data and exit")
	createAdmin := pflag.Bool("create-admin", false, "create the admin account from ADMIN_EMAIL/ADMIN_PASSWORD and exit")
	pflag.Parse()

	if err := run(*envFile, *seed, *createAdmin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(envFile string, seed, createAdmin bool) error {
	cfg, err := configs.LoadConfig(envFile)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return err
	}
	defer log.Sync()

	decimal.MarshalJSONWithoutQuotes = true

	// DB
	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	switch {
	case seed:
		return configs.SeedCatalog(db, log)
	case createAdmin:
		if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
			return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
		}
		return configs.SeedAdmin(db, cfg, log)
	}

	if err := configs.SeedSettings(db, cfg); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if err := configs.SeedAdmin(db, cfg, log); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return err
	}

	hub := ws.NewOrderHub(log)
	r := routes.NewRouter(routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Mailer: mailer.New(cfg.ResendAPIKey, cfg.FromEmail, log),
		Hub:    hub,
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return hub.Run(ctx) })
	g.Go(func() error {
		log.Info("server running", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
