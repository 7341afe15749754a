package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session store backends accepted in SESSION_STORE.
const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Channel names accepted in ORDER_CHANNEL.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelSNS      = "sns"
	ChannelKafka    = "kafka"
)

type Config struct {
	Env  string
	Port string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	SessionStore string
	RedisURL     string
	SessionTTL   time.Duration

	SessionSecret string
	CookieSecure  bool

	AdminPasswordHashed bool
	AdminRateLimit      int

	CurrencyLocale string
	CurrencySymbol string

	OrderChannel     string
	WhatsAppPhone    string
	OrderSNSTopicARN string
	KafkaBrokers     []string
	KafkaTopic       string

	AllowedOrigins []string

	SecretName string
}

// SecretGetter fetches a named string secret, e.g. from AWS Secrets Manager.
type SecretGetter interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// SecretsEnabled reports whether AWS_USE_SECRETS asks for credentials to be
// read from a secret store.
func SecretsEnabled() bool {
	return getBool("AWS_USE_SECRETS", false)
}

// Load reads configuration from the environment, after merging a .env file
// when one is present.
func Load() (Config, error) {
	return LoadWithSecrets(context.Background(), nil)
}

// LoadWithSecrets is Load with the database credentials and session secret
// overridden by the JSON secret SECRET_NAME, when secrets is non-nil.
func LoadWithSecrets(ctx context.Context, secrets SecretGetter) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "Asia/Jakarta"),

		SessionStore: strings.ToLower(getEnv("SESSION_STORE", StoreRedis)),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		SessionTTL:   getDuration("SESSION_TTL", 24*time.Hour),

		SessionSecret: strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		CookieSecure:  getBool("COOKIE_SECURE", false),

		AdminPasswordHashed: getBool("ADMIN_PASSWORD_HASHED", false),
		AdminRateLimit:      getInt("ADMIN_RATE_LIMIT_PER_MINUTE", 10),

		CurrencyLocale: getEnv("CURRENCY_LOCALE", "id"),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "Rp"),

		OrderChannel:     strings.ToLower(getEnv("ORDER_CHANNEL", ChannelWhatsApp)),
		WhatsAppPhone:    os.Getenv("WHATSAPP_PHONE"),
		OrderSNSTopicARN: os.Getenv("ORDER_SNS_TOPIC_ARN"),
		KafkaBrokers:     splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "orders.composed"),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),

		SecretName: getEnv("SECRET_NAME", "sayursegar/app"),
	}

	if secrets != nil {
		if err := cfg.applySecrets(ctx, secrets); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applySecrets(ctx context.Context, secrets SecretGetter) error {
	raw, err := secrets.GetSecret(ctx, c.SecretName)
	if err != nil {
		return fmt.Errorf("load secret %s: %w", c.SecretName, err)
	}

	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return fmt.Errorf("secret %s is not a JSON object: %w", c.SecretName, err)
	}

	overrides := map[string]*string{
		"POSTGRES_USER":     &c.PostgresUser,
		"POSTGRES_PASSWORD": &c.PostgresPassword,
		"POSTGRES_DB":       &c.PostgresDB,
		"POSTGRES_HOST":     &c.PostgresHost,
		"POSTGRES_PORT":     &c.PostgresPort,
		"SESSION_SECRET":    &c.SessionSecret,
	}
	for key, field := range overrides {
		if v := strings.TrimSpace(m[key]); v != "" {
			*field = v
		}
	}
	return nil
}

// Validate reports the first missing or inconsistent setting.
func (c Config) Validate() error {
	if c.PostgresUser == "" || c.PostgresPassword == "" || c.PostgresDB == "" {
		return fmt.Errorf("database config incomplete")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET not set")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.SessionStore != StoreRedis && c.SessionStore != StoreMemory {
		return fmt.Errorf("unknown SESSION_STORE %q", c.SessionStore)
	}
	switch c.OrderChannel {
	case ChannelWhatsApp:
	case ChannelSNS:
		if c.OrderSNSTopicARN == "" {
			return fmt.Errorf("ORDER_SNS_TOPIC_ARN not set")
		}
	case ChannelKafka:
		if len(c.KafkaBrokers) == 0 || c.KafkaTopic == "" {
			return fmt.Errorf("kafka channel needs KAFKA_BROKERS and KAFKA_TOPIC")
		}
	default:
		return fmt.Errorf("unknown ORDER_CHANNEL %q", c.OrderChannel)
	}
	return nil
}

// PostgresDSN renders the gorm postgres DSN.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB,
		c.PostgresPort, c.PostgresSSLMode, c.PostgresTimeZone)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
