package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"landing-site/handler"
	"landing-site/internal/bootstrap"
	"landing-site/internal/config"
	"landing-site/internal/logging"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	// CloudWatch indexes JSON lines; keep text only when asked for explicitly.
	if os.Getenv("LOG_FORMAT") == "" {
		cfg.LogFormat = "json"
	}
	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		slog.Error("failed to create logger", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	// ---- Service ----
	contactService, err := bootstrap.ContactService(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to create contact service", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	h, err := handler.NewHandler(contactService,
		handler.WithLogger(logger),
		handler.WithAllowedOrigin(cfg.AllowedOrigin),
	)
	if err != nil {
		logger.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
