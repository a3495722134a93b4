// Package bootstrap assembles the contact service from configuration. It is
// shared by the HTTP server and the Lambda entry point.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"landing-site/internal/config"
	"landing-site/internal/integrations/openai"
	"landing-site/internal/integrations/paramstore"
	"landing-site/internal/repository"
	"landing-site/internal/usecase"
)

// loadAWSConfig is replaced in tests.
var loadAWSConfig = func(ctx context.Context) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx)
}

// ContactService builds the service. AWS is only touched when the durable
// submission log or moderation screening is configured.
func ContactService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*usecase.ContactService, error) {
	if cfg.ContactLogTable == "" && cfg.ParamPrefix == "" {
		return usecase.NewContactService(logger)
	}

	awsCfg, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: load AWS config: %w", err)
	}

	var opts []usecase.Option
	if cfg.ContactLogTable != "" {
		recorder, err := repository.New(awsdynamodb.NewFromConfig(awsCfg), cfg.ContactLogTable)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: submission log: %w", err)
		}
		opts = append(opts, usecase.WithRecorder(recorder))
		logger.Info("durable submission log enabled", "table", cfg.ContactLogTable)
	}

	if cfg.ParamPrefix != "" {
		params, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
		if err != nil {
			return nil, fmt.Errorf("bootstrap: paramstore: %w", err)
		}
		screener, err := newScreener(ctx, params, cfg.ParamPrefix)
		if err != nil {
			return nil, err
		}
		opts = append(opts, usecase.WithScreener(screener))
		logger.Info("moderation screening enabled", "param_prefix", cfg.ParamPrefix)
	}

	return usecase.NewContactService(logger, opts...)
}

type modelGetter interface {
	openai.Getter
	GetParameterOr(ctx context.Context, name, def string) (string, error)
}

func newScreener(ctx context.Context, params modelGetter, prefix string) (*openai.Client, error) {
	model, err := params.GetParameterOr(ctx, prefix+"/config/moderation_model", openai.DefaultModerationModel)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: load moderation model: %w", err)
	}
	client, err := openai.NewClient(params, prefix, openai.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("bootstrap: moderation client: %w", err)
	}
	return client, nil
}
