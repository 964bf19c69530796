package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/scraper"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := scraper.New(scraper.Options{
		BaseURL:    cfg.Scraper.BaseURL,
		MaxRetries: cfg.Scraper.MaxRetries,
		Timeout:    helpers.ParseDuration(cfg.Scraper.Timeout, 10*time.Second),
		MinDelay:   time.Duration(cfg.Scraper.MinDelayMs) * time.Millisecond,
		MaxDelay:   time.Duration(cfg.Scraper.MaxDelayMs) * time.Millisecond,
	})

	logger.Info().Int("max_pages", cfg.Scraper.MaxPages).Str("base_url", cfg.Scraper.BaseURL).
		Msg("Starting scrape")

	books, err := s.ScrapeBooks(ctx, cfg.Scraper.MaxPages)
	if err != nil {
		logger.Error().Err(err).Int("collected", len(books)).Msg("Scrape interrupted")
	}
	if len(books) == 0 {
		logger.Error().Msg("No books collected")
		os.Exit(1)
	}

	if err := writeOutput(cfg.Scraper.OutputPath, cfg.Scraper.OutputFormat, books); err != nil {
		logger.Error().Err(err).Msg("Failed to write output")
		os.Exit(1)
	}

	logger.Info().Int("books", len(books)).Str("path", cfg.Scraper.OutputPath).
		Str("format", cfg.Scraper.OutputFormat).Msg("Scrape complete")
}

func writeOutput(path, format string, books []scraper.Book) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if format == "json" {
		return scraper.WriteJSON(file, books)
	}
	return scraper.WriteCSV(file, books)
}
