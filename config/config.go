package config

import (
	"time"

	"github.com/joho/godotenv"

	utilKit "github.com/superj80820/user-profile-service/kit/util"
)

type Config struct {
	Env  string
	Port int

	DBDialect string
	DBDSN     string

	S3Bucket           string
	S3Region           string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	KafkaURL          string
	AccountEventTopic string

	SendGridAPIKey string
	MailFromEmail  string
	MailFromName   string
	AppBaseURL     string

	MetricNamespace string
	EnableMetric    bool
	EnableTracer    bool

	EnableRateLimit      bool
	RedisURL             string
	RateLimitMaxRequests int
	RateLimitExpiry      int

	NotifyFailureAborts  bool
	VerificationTokenTTL time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:  utilKit.GetEnvString("ENV", "development"),
		Port: utilKit.GetEnvInt("PORT", 8082),

		DBDialect: utilKit.GetEnvString("DB_DIALECT", "postgres"),
		DBDSN:     utilKit.GetEnvString("DB_DSN", "host=localhost user=postgres password=postgres dbname=webapp port=5432 sslmode=disable"),

		S3Bucket:           utilKit.GetEnvString("S3_BUCKET", ""),
		S3Region:           utilKit.GetEnvString("S3_REGION", "us-east-1"),
		AWSAccessKeyID:     utilKit.GetEnvString("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: utilKit.GetEnvString("AWS_SECRET_ACCESS_KEY", ""),

		KafkaURL:          utilKit.GetEnvString("KAFKA_URL", ""),
		AccountEventTopic: utilKit.GetEnvString("ACCOUNT_EVENT_TOPIC", "account-created-topic"),

		SendGridAPIKey: utilKit.GetEnvString("SENDGRID_API_KEY", ""),
		MailFromEmail:  utilKit.GetEnvString("MAIL_FROM_EMAIL", "no-reply@localhost"),
		MailFromName:   utilKit.GetEnvString("MAIL_FROM_NAME", "User Profile Service"),
		AppBaseURL:     utilKit.GetEnvString("APP_BASE_URL", "http://localhost:8082"),

		MetricNamespace: utilKit.GetEnvString("METRIC_NAMESPACE", "system"),
		EnableMetric:    utilKit.GetEnvBool("ENABLE_METRIC", false),
		EnableTracer:    utilKit.GetEnvBool("ENABLE_TRACER", false),

		EnableRateLimit:      utilKit.GetEnvBool("ENABLE_RATE_LIMIT", false),
		RedisURL:             utilKit.GetEnvString("REDIS_URL", "localhost:6379"),
		RateLimitMaxRequests: utilKit.GetEnvInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitExpiry:      utilKit.GetEnvInt("RATE_LIMIT_EXPIRY", 10),

		NotifyFailureAborts:  utilKit.GetEnvBool("NOTIFY_FAILURE_ABORTS", false),
		VerificationTokenTTL: utilKit.GetEnvDuration("VERIFICATION_TOKEN_TTL", 15*time.Minute),
	}
}
