package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/meemoo/sidecar-creator/pkg/sidecar"
	"github.com/meemoo/sidecar-creator/pkg/sidecar/api"
	"github.com/meemoo/sidecar-creator/pkg/sidecar/transfer/ftp"
)

type Config struct {
	Port           string `env:"PORT" env-default:"8080"`
	DestinationDir string `env:"DESTINATION_DIR" env-default:"/"`
	BaseDomain     string `env:"BASE_DOMAIN" env-default:"viaa.be"`
	FTP            FtpConfig
}

type FtpConfig struct {
	URL      string `env:"MEDIAHAVEN_FTP_URL" env-default:"ftp://localhost"`
	User     string `env:"MEDIAHAVEN_FTP_USER" env-default:"anonymous"`
	Password string `env:"MEDIAHAVEN_FTP_PASSWORD" env-default:""`
}

func main() {
	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("Failed to read configuration", "err", err)
		os.Exit(1)
	}

	sink, err := ftp.New(ftp.Config{
		URL:      config.FTP.URL,
		User:     config.FTP.User,
		Password: config.FTP.Password,
	})
	if err != nil {
		slog.Error("Failed to initialize FTP sink", "err", err)
		os.Exit(1)
	}

	svc, err := sidecar.New(
		sidecar.WithSink(sink),
		sidecar.WithDestinationDir(config.DestinationDir),
		sidecar.WithBaseDomain(config.BaseDomain),
	)
	if err != nil {
		slog.Error("Failed to build sidecar service", "err", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Mount("/v1/notifications", api.NewNotificationHandler(svc).Routes())

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Port),
		Handler: r,
	}

	go func() {
		slog.Info("Sidecar creator starting", "port", config.Port, "ftp_url", config.FTP.URL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "err", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "err", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
