package main

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"ti-management/internal/gateway"
	"ti-management/pkg/config"
	applogger "ti-management/pkg/logger"
	appmw "ti-management/pkg/middleware"
	"ti-management/pkg/token"
)

func main() {
	logger := applogger.NewLogger("api-gateway")
	defer logger.Sync()

	cfg := config.New()

	e := echo.New()
	e.HideBanner = true
	e.Use(appmw.Recover(logger))
	e.Use(appmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	jwtSvc := token.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
	authMw := appmw.NewAuthMiddleware(jwtSvc, logger)
	e.Use(authMw.Auth("/", "/health", "/api/auth"))

	gw := gateway.New(cfg.Backends, logger)
	if err := gw.Register(e); err != nil {
		logger.Fatal("no se pudo montar el gateway", zap.Error(err))
	}

	port := ":" + config.Port("GATEWAY_PORT", "8000")
	logger.Info("API Gateway escuchando", zap.String("port", port))
	if err := e.Start(port); err != nil {
		logger.Fatal("error al iniciar el servidor", zap.Error(err))
	}
}
