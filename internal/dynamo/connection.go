package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/willibrandon/ddv/internal/config"
	"github.com/willibrandon/ddv/internal/logger"
)

// NewClient loads the shared AWS configuration and returns a client for it.
//
// The region is resolved in order: cfg.Region, the region of the selected
// profile or environment, then cfg.DefaultRegion.
func NewClient(ctx context.Context, cfg config.AWSConfig) (*DynamoClient, error) {
	logger.Debug("Loading AWS configuration",
		"region", cfg.Region,
		"profile", cfg.Profile,
		"endpoint_url", cfg.EndpointURL,
	)

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Error("Failed to load AWS configuration", "error", err)
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	if awsCfg.Region == "" {
		awsCfg.Region = cfg.DefaultRegion
	}

	api := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
		}
	})

	logger.Info("DynamoDB client ready",
		"region", awsCfg.Region,
		"endpoint_url", cfg.EndpointURL,
	)
	return &DynamoClient{api: api, region: awsCfg.Region}, nil
}
