package main

import (
	"log"
	"os"

	"github.com/iceymoss/jobtrack/internal/conf"
	"github.com/iceymoss/jobtrack/internal/server"
	"github.com/iceymoss/jobtrack/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env 可选，没有也能跑
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("⚠️ .env load error", zap.Error(err))
	}

	cfg, err := conf.LoadConfig("configs/config.yaml")
	if err != nil {
		logger.Fatal("❌ LoadConfig error", zap.Error(err))
	}

	srv := server.NewServer(cfg)

	port := cfg.Server.Port
	if port == "" {
		port = ":8001"
	}

	log.Printf("🌐 Jobs API running at http://localhost%s", port)
	if err := srv.Run(port); err != nil {
		logger.Fatal("❌ Server error", zap.Error(err))
	}
}
