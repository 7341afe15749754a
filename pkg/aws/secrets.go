package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// currentStage is the Secrets Manager stage holding the live version of a
// rotated secret.
const currentStage = "AWSCURRENT"

var errEmptySecret = errors.New("secret has no string value")

type secretsAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsClient reads the storefront's JSON settings secret. Config is loaded
// once per process, so a secret is fetched at most once and rotation takes
// effect on restart.
type SecretsClient struct {
	api secretsAPI

	mu      sync.Mutex
	fetched map[string]string
}

func NewSecretsClient(cfg sdkaws.Config) *SecretsClient {
	return newSecretsClient(secretsmanager.NewFromConfig(cfg))
}

func newSecretsClient(api secretsAPI) *SecretsClient {
	return &SecretsClient{api: api, fetched: map[string]string{}}
}

// GetSecret returns the current string value of the named secret.
func (s *SecretsClient) GetSecret(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.fetched[name]; ok {
		return v, nil
	}

	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     sdkaws.String(name),
		VersionStage: sdkaws.String(currentStage),
	})
	if err != nil {
		return "", fmt.Errorf("read secret %q: %w", name, err)
	}
	if out.SecretString == nil || strings.TrimSpace(*out.SecretString) == "" {
		return "", fmt.Errorf("read secret %q: %w", name, errEmptySecret)
	}

	s.fetched[name] = *out.SecretString
	return *out.SecretString, nil
}
