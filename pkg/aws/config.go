// Package aws holds the storefront's AWS clients: SNS for order dispatch,
// Secrets Manager for credentials and CloudWatch for metrics.
package aws

import (
	"context"
	"fmt"
	"os"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// LoadAWSConfig loads the default AWS config. Static keys from
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY take precedence over the default
// chain. AWS_ENDPOINT, when set, points every client at a single endpoint such
// as LocalStack.
func LoadAWSConfig(ctx context.Context) (sdkaws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, loadOptions()...)
	if err != nil {
		return cfg, fmt.Errorf("failed to load aws config: %w", err)
	}
	if endpoint := os.Getenv("AWS_ENDPOINT"); endpoint != "" {
		cfg.BaseEndpoint = sdkaws.String(endpoint)
	}
	return cfg, nil
}

func loadOptions() []func(*config.LoadOptions) error {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "ap-southeast-3"
	}
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}

	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, os.Getenv("AWS_SESSION_TOKEN")),
		))
	}
	return opts
}
