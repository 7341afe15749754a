package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretsAPI struct {
	calls int
	last  *secretsmanager.GetSecretValueInput
	value *string
	err   error
}

func (f *fakeSecretsAPI) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	f.last = in
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.value}, nil
}

func TestSecretsClient_Caches(t *testing.T) {
	api := &fakeSecretsAPI{value: sdkaws.String(`{"SESSION_SECRET":"x"}`)}
	client := newSecretsClient(api)

	for i := 0; i < 3; i++ {
		v, err := client.GetSecret(context.Background(), "sayursegar/app")
		require.NoError(t, err)
		assert.Equal(t, `{"SESSION_SECRET":"x"}`, v)
	}
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, "sayursegar/app", *api.last.SecretId)
	assert.Equal(t, "AWSCURRENT", *api.last.VersionStage)
}

func TestSecretsClient_Errors(t *testing.T) {
	_, err := newSecretsClient(&fakeSecretsAPI{err: errors.New("denied")}).GetSecret(context.Background(), "a")
	assert.ErrorContains(t, err, "denied")

	_, err = newSecretsClient(&fakeSecretsAPI{}).GetSecret(context.Background(), "a")
	assert.ErrorIs(t, err, errEmptySecret)

	_, err = newSecretsClient(&fakeSecretsAPI{value: sdkaws.String("  ")}).GetSecret(context.Background(), "a")
	assert.ErrorIs(t, err, errEmptySecret)

	failing := &fakeSecretsAPI{err: errors.New("throttled")}
	client := newSecretsClient(failing)
	_, _ = client.GetSecret(context.Background(), "a")
	_, _ = client.GetSecret(context.Background(), "a")
	assert.Equal(t, 2, failing.calls, "failures are not cached")
}

type fakeMetricsAPI struct {
	inputs []*cloudwatch.PutMetricDataInput
}

func (f *fakeMetricsAPI) PutMetricData(_ context.Context, in *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, in)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestMetricsClient(t *testing.T) {
	api := &fakeMetricsAPI{}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	client := &MetricsClient{client: api, namespace: "Test", enabled: true, now: func() time.Time { return at }}

	require.NoError(t, client.RecordCount(context.Background(), MetricOrdersDispatched, map[string]string{"Channel": "kafka"}))
	require.NoError(t, client.RecordLatency(context.Background(), MetricHTTPLatency, 1500*time.Millisecond, nil))

	require.Len(t, api.inputs, 2)
	first := api.inputs[0].MetricData[0]
	assert.Equal(t, "Test", *api.inputs[0].Namespace)
	assert.Equal(t, MetricOrdersDispatched, *first.MetricName)
	assert.Equal(t, 1.0, *first.Value)
	assert.Equal(t, types.StandardUnitCount, first.Unit)
	assert.Equal(t, at, *first.Timestamp)
	require.Len(t, first.Dimensions, 1)
	assert.Equal(t, "Channel", *first.Dimensions[0].Name)

	second := api.inputs[1].MetricData[0]
	assert.Equal(t, 1500.0, *second.Value)
	assert.Equal(t, types.StandardUnitMilliseconds, second.Unit)
}

func TestMetricsClient_Disabled(t *testing.T) {
	api := &fakeMetricsAPI{}
	client := &MetricsClient{client: api, namespace: "Test", now: time.Now}

	require.NoError(t, client.RecordCount(context.Background(), MetricHTTPRequests, nil))
	assert.Empty(t, api.inputs)
	assert.False(t, client.IsEnabled())

	var nilClient *MetricsClient
	assert.NoError(t, nilClient.RecordCount(context.Background(), MetricHTTPRequests, nil))
	assert.False(t, nilClient.IsEnabled())
}

func TestLoadAWSConfig_StaticCredentialsAndEndpoint(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_ENDPOINT", "http://localhost:4566")

	cfg, err := LoadAWSConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.Region)
	require.NotNil(t, cfg.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *cfg.BaseEndpoint)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}
