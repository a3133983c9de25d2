package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickaid/api"
	"quickaid/config"
	"quickaid/db"
	"quickaid/logger"
	"quickaid/notify"
	"quickaid/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.L.Fatal("quickaid stopped", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := db.Open(connectCtx, cfg)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.L.Warn("close ticket store", zap.Error(err))
		}
	}()

	var sender notify.Sender = notify.LogSender{}
	if cfg.SendGridAPIKey != "" {
		sender = notify.NewSendGridSender(cfg.SendGridAPIKey, cfg.MailFrom, cfg.MailFromName)
	} else {
		logger.L.Warn("SENDGRID_API_KEY not set, confirmation emails are disabled")
	}

	var opts []services.Option
	if cfg.AdminAlertsEnabled() {
		alerter, err := notify.NewTelegramAlerter(cfg.BotToken, cfg.AdminID)
		if err != nil {
			logger.L.Warn("telegram admin alerts disabled", zap.Error(err))
		} else {
			opts = append(opts, services.WithAdminAlerter(alerter))
		}
	}

	svc := services.NewTicketService(store, sender, opts...)

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      api.NewRouter(api.NewTicketHandler(svc)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L.Info("http server listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.L.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
