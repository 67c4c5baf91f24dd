package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/padraicbc/teemarket/config"
	"github.com/padraicbc/teemarket/db"
	"github.com/padraicbc/teemarket/handlers"
	applog "github.com/padraicbc/teemarket/logger"
	"github.com/padraicbc/teemarket/search"
	"github.com/padraicbc/teemarket/tracing"
	"github.com/padraicbc/teemarket/weather"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug, cfg.ServiceName)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	shutdownTracing, err := tracing.Init(context.Background(), cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Fatal("tracing init failed", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	bdb := db.Setup(cfg)
	defer bdb.Close()

	if cfg.Debug {
		if err := db.CreateTables(context.Background(), bdb); err != nil {
			logger.Fatal("create tables failed", zap.Error(err))
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	store := db.NewStore(bdb)
	forecasts := weather.NewClient(weather.Config{
		BaseURL:   cfg.WeatherBaseURL,
		UserAgent: cfg.WeatherUserAgent,
		Timeout:   cfg.WeatherTimeout,
		CacheTTL:  cfg.ForecastCacheTTL,
	}, weather.NewRedisCache(rdb), store, logger.Named("weather"))

	svc := search.NewService(store, forecasts, logger.Named("search"), search.Options{
		Cutoff:      cfg.BookingCutoff,
		DefaultTake: cfg.SearchDefaultTake,
	})

	h := handlers.New(bdb, svc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(otelecho.Middleware(cfg.ServiceName))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"*", "Authorization"},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	h.Register(e, cfg.JWTKey())

	if cfg.Debug || len(cfg.TLSDomains) == 0 {
		logger.Info("starting server", zap.Bool("debug", cfg.Debug), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
