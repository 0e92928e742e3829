package main

import (
	"net/http"
	"time"

	"github.com/deirn/cf-b2cdn/internal/b2"
	"github.com/deirn/cf-b2cdn/internal/config"
	"github.com/deirn/cf-b2cdn/internal/handlers"
	"github.com/deirn/cf-b2cdn/internal/listing"
	customMiddleware "github.com/deirn/cf-b2cdn/internal/middleware"
	"github.com/deirn/cf-b2cdn/internal/renderer"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	e := newServer(cfg, log)

	// Start Server
	if err := e.Start(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}

func newServer(cfg *config.Config, log *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Provider client and handlers
	client := b2.NewClient(b2.Config{
		AccountHost: cfg.AccountHost,
		KeyID:       cfg.KeyID,
		AppKey:      cfg.AppKey,
		BucketID:    cfg.BucketID,
		BucketName:  cfg.BucketName,
	})
	browseHandler := handlers.NewBrowseHandler(client, listing.Site{FileHost: cfg.FileHost})

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(logrus.Fields{
				"status": v.Status,
				"uri":    v.URI,
			}).Info("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(customMiddleware.SecurityHeaders())
	e.Use(customMiddleware.CacheHeaders(time.Duration(cfg.CacheMaxAge) * time.Second))

	// Template Renderer and error page
	e.Renderer = renderer.New()
	e.HTTPErrorHandler = handlers.ErrorHandler(log)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/*", browseHandler.Handle)

	return e
}
