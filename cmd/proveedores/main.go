package main

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ti-management/internal/routes"
	"ti-management/pkg/config"
	"ti-management/pkg/database/postgresql"
	applogger "ti-management/pkg/logger"
	appmw "ti-management/pkg/middleware"
	"ti-management/pkg/validation"
)

func main() {
	logger := applogger.NewLogger("proveedores")
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

	routes.RegisterProveedoresRoutes(e, pool, logger)

	port := ":" + config.Port("PROVEEDORES_PORT", "8002")
	logger.Info("servicio de proveedores escuchando", zap.String("port", port))
	if err := e.Start(port); err != nil {
		logger.Fatal("error al iniciar el servidor", zap.Error(err))
	}
}
