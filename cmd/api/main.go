package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/skillswaphq/skillswap-backend/api/controllers"
	"github.com/skillswaphq/skillswap-backend/api/routes"
	"github.com/skillswaphq/skillswap-backend/internal/analytics"
	"github.com/skillswaphq/skillswap-backend/internal/feedback"
	"github.com/skillswaphq/skillswap-backend/internal/messages"
	"github.com/skillswaphq/skillswap-backend/internal/search"
	"github.com/skillswaphq/skillswap-backend/internal/swaps"
	"github.com/skillswaphq/skillswap-backend/internal/users"
	"github.com/skillswaphq/skillswap-backend/pkg/config"
	"github.com/skillswaphq/skillswap-backend/pkg/db"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
	"github.com/skillswaphq/skillswap-backend/pkg/metrics"
	"github.com/skillswaphq/skillswap-backend/pkg/migrate"
	"github.com/skillswaphq/skillswap-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	defer func() {
		closeErr := multierr.Combine(dbClient.Close(), redisClient.Close())
		if closeErr != nil {
			logg.Error(context.Background(), "error closing clients", closeErr)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	gormDB := dbClient.DB()
	usersRepo := users.NewRepository(gormDB)
	swapsRepo := swaps.NewRepository(gormDB)
	feedbackRepo := feedback.NewRepository(gormDB)
	messagesRepo := messages.NewRepository(gormDB)
	statsRepo := analytics.NewRepository(gormDB)

	usersService, err := users.NewService(usersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}

	swapsService, err := swaps.NewService(swapsRepo, usersRepo, feedbackRepo, cfg.FeatureFlags.StrictLifecycle)
	if err != nil {
		logg.Error(context.Background(), "failed to create swap service", err)
		os.Exit(1)
	}

	feedbackService, err := feedback.NewService(feedbackRepo, swapsRepo, usersRepo, cfg.FeatureFlags.StrictLifecycle)
	if err != nil {
		logg.Error(context.Background(), "failed to create feedback service", err)
		os.Exit(1)
	}

	messagesService, err := messages.NewService(messagesRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create message service", err)
		os.Exit(1)
	}

	searchService, err := search.NewService(usersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create search service", err)
		os.Exit(1)
	}

	analyticsService, err := analytics.NewService(statsRepo, redisClient, logg, cfg.Analytics)
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	router := routes.NewRouter(routes.Deps{
		Config:      cfg,
		Logger:      logg,
		HTTPMetrics: httpMetrics,
		MetricsH:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		ReadyChecks: []controllers.ReadyCheck{
			{Name: "database", Ping: dbClient.Ping},
			{Name: "redis", Ping: redisClient.Ping},
		},
		Users:     usersService,
		Swaps:     swapsService,
		Feedback:  feedbackService,
		Messages:  messagesService,
		Search:    searchService,
		Analytics: analyticsService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
