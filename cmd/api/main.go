package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // Asia/Jakarta on hosts without zoneinfo

	"univio/config"
	_ "univio/docs" // Swagger docs
	tgDelivery "univio/internal/extraction/delivery/telegram"
	extractionUsecase "univio/internal/extraction/usecase"
	"univio/internal/httpserver"
	"univio/internal/middleware"
	priorityUsecase "univio/internal/priority/usecase"
	"univio/pkg/datemath"
	"univio/pkg/gcalendar"
	"univio/pkg/log"
	"univio/pkg/telegram"
)

// @title       Univio Study Planner API
// @description Task prioritization and text extraction for university students, with Telegram and Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Univio...")
	logger.Infof(ctx, "Environment: %s, timezone: %s", cfg.Environment.Name, cfg.Clock.Timezone)

	// 3. Clock and date parser
	dateParser, err := datemath.NewParser(cfg.Clock.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Clock.Timezone, err)
		return
	}
	clock := datemath.SystemClock{Location: dateParser.Location()}

	// 4. Priority domain
	priorityUC := priorityUsecase.New(logger, clock, cfg.Priority.RankLimit)

	// 5. Extraction domain, Google Calendar is optional
	extractionCfg := extractionUsecase.Config{
		Clock:      clock,
		Parser:     dateParser,
		CalendarID: cfg.GoogleCalendar.CalendarID,
	}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate a token")
		} else {
			extractionCfg.Calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	} else {
		logger.Warn(ctx, "Calendar export disabled: GOOGLE_CALENDAR_CREDENTIALS is missing")
	}
	extractionUC := extractionUsecase.New(logger, extractionCfg)

	// 6. Telegram, optional
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, extractionUC, telegramBot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		PriorityUC:      priorityUC,
		ExtractionUC:    extractionUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
