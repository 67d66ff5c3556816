package main

import (
	"log"

	"github.com/damian-kos/portfolio/internal/config"
	"github.com/damian-kos/portfolio/internal/db"
	"github.com/damian-kos/portfolio/internal/handler"
	"github.com/damian-kos/portfolio/internal/router"
	"github.com/damian-kos/portfolio/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	mail := service.NewMailService(cfg.Mail, logger)
	api := handler.NewAPI(db.DB, mail, logger)

	r := router.Setup(api, cfg.SessionSecret, "")

	logger.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
