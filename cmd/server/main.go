package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/zougmar/hassan-elec/internal/logger"
	"github.com/zougmar/hassan-elec/internal/notify"
	"github.com/zougmar/hassan-elec/internal/upload"
)

const shutdownTimeout = 10 * time.Second

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc biến môi trường LOG_* để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

func main() {
	initLogger()
	defer logger.Close()
	log := logger.GetAppLogger()

	cfg := initConfig()
	initValidator()
	store := initDatabase(cfg)

	svcs, err := initServices(cfg, store)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	InitDefaultData(cfg, svcs.owners)

	images, err := upload.NewResolverFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize upload resolver: %v", err)
	}
	log.WithField("strategies", images.Names()).Info("Upload resolver ready")

	mailer := notify.NewMailer(cfg)
	if mailer == nil {
		log.Info("SMTP not configured, new request emails disabled")
	}

	app, err := InitFiberApp(cfg, authMiddleware(svcs), initRoutes(svcs, store, images, mailer))
	if err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		address := ":" + cfg.Port
		log.WithFields(map[string]interface{}{"address": address, "env": cfg.GoEnv}).Info("Starting server with HTTP")
		listenErr <- app.Listen(address, fiber.ListenConfig{DisableStartupMessage: cfg.IsProduction()})
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			log.WithError(err).Error("Error in Fiber Listen")
		}
	case <-ctx.Done():
		log.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Warn("Server shutdown incomplete")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.WithError(err).Warn("Failed to close MongoDB connection")
	}
	log.Info("Server stopped")
}
