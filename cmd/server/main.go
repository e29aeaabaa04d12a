package main

import (
	"os"
	"os/signal"
	"syscall"

	"tombs-server/internal/server"
	"tombs-server/internal/storage"
	"tombs-server/internal/version"
	"tombs-server/pkg/dungeon"
	"tombs-server/pkg/logger"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config - конфигурация процесса из окружения.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	SaveDir     string `env:"SAVE_DIR" envDefault:"./saves"`
	DatabaseURL string `env:"DATABASE_URL"`
	Seed        int64  `env:"SEED" envDefault:"0"` // 0 - случайное зерно на игру
}

func init() {
	logger.Init()
}

func main() {
	// .env опционален, переменные окружения имеют приоритет
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("No .env file found, using environment as-is")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		logger.Log.Fatal("Failed to parse config: ", err)
	}

	logger.Log.Info("Starting Tombs of the Ancient Kings...")
	logger.Log.Info(version.String())

	// Бэкенд сейвов: Postgres, если задан DATABASE_URL, иначе файлы
	var saves storage.Store
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			logger.Log.Fatal("Failed to connect to postgres: ", err)
		}
		defer pg.Close()
		saves = pg
		logger.Log.Info("💾 Saves backend: postgres")
	} else {
		saves = storage.NewFileStore(cfg.SaveDir)
		logger.Log.Infof("💾 Saves backend: files in %s", cfg.SaveDir)
	}

	if cfg.Seed != 0 {
		logger.Log.Infof("🎲 Using explicit seed: %d", cfg.Seed)
	}

	srv := server.New(saves, dungeon.DefaultConfig(), cfg.Seed, cfg.Port)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}
