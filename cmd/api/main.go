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

	"github.com/gin-gonic/gin"

	"github.com/joefazee/directory-admin/app"
	"github.com/joefazee/directory-admin/app/api"
	"github.com/joefazee/directory-admin/app/categories"
	apiDoc "github.com/joefazee/directory-admin/app/doc"
	"github.com/joefazee/directory-admin/app/providers"
	"github.com/joefazee/directory-admin/app/subcategories"
	_ "github.com/joefazee/directory-admin/docs"
	"github.com/joefazee/directory-admin/internal/deps"
	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/logger"
	"github.com/joefazee/directory-admin/internal/router"
)

const version = "1.0.0"

// @title Directory Admin API
// @version 1.0
// @description Admin API over the service directory catalog: main categories, sub-categories and service providers.

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	l := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "directory-admin-api",
		"env":     cfg.Env,
	})

	container, err := deps.Build(cfg, l, i18n.English)
	if err != nil {
		l.Fatal(err, logger.Fields{"stage": "dependencies"})
	}
	defer func() {
		if err := container.Close(); err != nil {
			l.Error(err, logger.Fields{"stage": "shutdown"})
		}
	}()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := router.NewMounter(container).
		Public(r).
		Use(api.RequestID(), api.RequestLogger(l), api.Cors(cfg.CorsOrigins)).
		Handle(http.MethodGet, "/healthz", api.HealthCheck(cfg.Env, version)).
		Mount(
			categories.Init,
			subcategories.Init,
			providers.Init,
		)
	apiDoc.Init(r, cfg.Env, cfg.PublicURL)
	l.Debug("routes mounted", logger.Fields{"routes": v1.Routes()})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		l.Info("starting directory admin API", logger.Fields{"addr": srv.Addr, "cache": cfg.Cache.Backend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error(err, logger.Fields{"stage": "listen"})
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error(err, logger.Fields{"stage": "shutdown"})
	}
	l.Info("server stopped", nil)
}
