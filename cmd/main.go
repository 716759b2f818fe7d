package main

import (
	"context"

	"github.com/farkinca1971/office-management-sub003/api"
	"github.com/farkinca1971/office-management-sub003/config"
	"github.com/farkinca1971/office-management-sub003/pkg/logger"
	"github.com/farkinca1971/office-management-sub003/storage/mysql"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	loggerLevel := logger.LevelDebug

	switch cfg.Environment {
	case config.DebugMode:
		loggerLevel = logger.LevelDebug
		gin.SetMode(gin.DebugMode)
	case config.TestMode:
		loggerLevel = logger.LevelDebug
		gin.SetMode(gin.TestMode)
	default:
		loggerLevel = logger.LevelInfo
		gin.SetMode(gin.ReleaseMode)
	}

	log := logger.NewLogger(cfg.ServiceName, loggerLevel)
	defer logger.Cleanup(log)
	log.Info("Service env", logger.Any("cfg", cfg))

	strg, err := mysql.NewMysql(context.Background(), cfg)
	if err != nil {
		log.Panic("mysql.NewMysql", logger.Error(err))
	}
	defer strg.CloseDB()

	router := api.SetUpRouter(cfg, log, strg)

	log.Info("HTTP: Server being started...", logger.String("port", cfg.HTTPPort))

	if err := router.Run(cfg.HTTPPort); err != nil {
		log.Panic("router.Run", logger.Error(err))
	}
}
