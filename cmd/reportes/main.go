package main

import (
	"context"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ti-management/internal/repositories"
	"ti-management/internal/routes"
	"ti-management/pkg/config"
	"ti-management/pkg/database/postgresql"
	applogger "ti-management/pkg/logger"
	appmw "ti-management/pkg/middleware"
	"ti-management/pkg/validation"
)

func main() {
	logger := applogger.NewLogger("reportes")
	defer logger.Sync()

	cfg := config.New()

	e := echo.New()
	e.HideBanner = true
	e.Use(appmw.Recover(logger))
	e.Use(appmw.RequestLogger(logger))

	v, err := validation.New()
	if err != nil {
		logger.Fatal("error registrando reglas de validación", zap.Error(err))
	}
	e.Validator = v

	pool, err := postgresql.Connect(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("no se pudo conectar a PostgreSQL", zap.Error(err))
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("no se pudo conectar a Redis",
			zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	cache := repositories.NewRedisCacheRepository(redisClient)

	exportDir := os.Getenv("REPORTES_DIR")
	if exportDir == "" {
		exportDir = "reportes"
	}

	routes.RegisterReportesRoutes(e, pool, cache, exportDir, logger)

	port := ":" + config.Port("REPORTES_PORT", "8004")
	logger.Info("servicio de reportes escuchando", zap.String("port", port))
	if err := e.Start(port); err != nil {
		logger.Fatal("error al iniciar el servidor", zap.Error(err))
	}
}
