package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/srgjo27/bus_booking/internal/adapter/cache"
	"github.com/srgjo27/bus_booking/internal/adapter/rest"
	"github.com/srgjo27/bus_booking/internal/adapter/tui"
	"github.com/srgjo27/bus_booking/internal/core/ports"
	"github.com/srgjo27/bus_booking/internal/core/services"
	"github.com/srgjo27/bus_booking/internal/platform/config"
	"github.com/srgjo27/bus_booking/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	client := rest.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, logger)

	searchCache := connectCache(cfg, logger)
	searchSvc := services.NewSearchService(client, searchCache, cfg.CacheTTL, logger)

	toasts := tui.NewToastCenter()
	session := services.NewBookingSession(client, toasts, logger)

	fromSuggest := services.NewSuggester(client, cfg.SuggestDebounce, logger)
	toSuggest := services.NewSuggester(client, cfg.SuggestDebounce, logger)

	model := tui.New(searchSvc, session, toasts, fromSuggest, toSuggest, logger)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// connectCache dials Redis when configured. The cache is optional: a
// missing address or a failed ping just means every search goes to the
// trip service.
func connectCache(cfg config.Config, logger *zap.Logger) ports.Cache {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: 0})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, running without search cache",
			zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return nil
	}
	logger.Info("Redis connected", zap.String("addr", cfg.RedisAddr))
	return cache.NewRedisCache(client)
}
