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

	"github.com/joho/godotenv"

	"go-task-api/internal/config"
	"go-task-api/internal/repositories"
	"go-task-api/internal/routes"
)

func main() {
	// .env があれば読み込む (なくてもエラーにしない)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Fatal: Failed to load config: %v", err)
	}

	// バックアップファイルを読み込んでストアを初期化
	// ファイルが壊れている場合はここで起動を中断する
	taskRepo, err := repositories.NewFileRepository(cfg.Storage.TasksFile)
	if err != nil {
		log.Fatalf("Fatal: Failed to open tasks file: %v", err)
	}

	r := routes.SetupRouter(cfg, taskRepo)

	httpServer := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s...", cfg.Server.Address)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Fatal: Server error: %v", err)
		}
	}()

	// SIGINT/SIGTERM でグレースフルシャットダウン
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
