package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"quizku_backend/internals/configs"
	database "quizku_backend/internals/databases"
	authRepo "quizku_backend/internals/features/users/auth/repository"
	scheduler "quizku_backend/internals/features/users/auth/scheduler"
	"quizku_backend/internals/helpers/password"
	middlewares "quizku_backend/internals/middlewares"
	routes "quizku_backend/internals/route"
	"quizku_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          middlewares.ErrorHandler,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	middlewares.SetupMiddlewares(app, cfg)

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	database.TunePool(db)

	if cfg.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("[ERROR] auto migrate: %v", err)
		}
	}
	if err := seeds.RunAllSeeds(db, cfg.SeedFile); err != nil {
		log.Fatalf("[ERROR] seed: %v", err)
	}

	sealer, err := password.NewSealer(cfg.PasswordScheme, cfg.PassSec)
	if err != nil {
		log.Fatalf("[ERROR] password sealer: %v", err)
	}

	// ⏱ scheduler setelah DB siap
	blacklist := authRepo.NewBlacklistStore(db, cfg.JWTSecret)
	cleanup, err := scheduler.StartBlacklistCleanup(blacklist, cfg.BlacklistCleanupCron, cfg.BlacklistTTLDays)
	if err != nil {
		log.Fatalf("[ERROR] blacklist cleanup schedule: %v", err)
	}

	// ✅ Routes
	routes.SetupRoutes(app, db, cfg, sealer, blacklist)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	<-cleanup.Stop().Done()
	database.Close(db)
}
