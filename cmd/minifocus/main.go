package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/minifocus/minifocus/internal/api"
	"github.com/minifocus/minifocus/internal/cli"
	"github.com/minifocus/minifocus/internal/config"
	"github.com/minifocus/minifocus/internal/db"
)

func main() {
	cfg := config.Load()

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: minifocus reset-password <email>")
			os.Exit(2)
		}
		if err := cli.RunResetPasswordCommand(cfg.DBPath, os.Args[2]); err != nil {
			log.Fatalf("reset password failed: %v", err)
		}
		return
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, cfg)
	if err := handler.EnsureInboxes(); err != nil {
		log.Fatalf("inbox bootstrap failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName + " v" + cfg.Version,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins(),
		AllowCredentials: true,
	}))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("%s listening on http://0.0.0.0:%s (db: %s)", cfg.AppName, cfg.Port, cfg.DBPath)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
