package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	APIBaseURL   string
	APITimeout   time.Duration
	MediaBaseURL string

	RedisAddr   string
	DBURL       string
	KafkaBroker string

	SessionSecret string
	CORSOrigins   []string

	PaymentGateway       string
	PaymentKeyID         string
	MidtransServerKey    string
	MidtransClientKey    string
	MidtransIsProduction bool

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	ContentTTL     time.Duration
	IdempotencyTTL time.Duration
	OutboxInterval time.Duration
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("[config] invalid duration %s=%q, using %s", k, v, def)
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists

	cfg := Config{
		Env:  getenv("APP_ENV", "development"),
		Port: getenv("PORT", "3000"),

		APIBaseURL:   getenv("API_BASE_URL", ""),
		APITimeout:   getDuration("API_TIMEOUT", 30*time.Second),
		MediaBaseURL: getenv("MEDIA_BASE_URL", ""),

		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		DBURL:       getenv("DB_URL", ""),
		KafkaBroker: getenv("KAFKA_BROKER", ""),

		SessionSecret: getenv("SESSION_SECRET", ""),
		CORSOrigins:   splitList(getenv("CORS_ORIGINS", "http://localhost:5173")),

		PaymentGateway:       getenv("PAYMENT_GATEWAY", "backend"),
		PaymentKeyID:         getenv("PAYMENT_KEY_ID", ""),
		MidtransServerKey:    strings.Trim(getenv("MIDTRANS_SERVER_KEY", ""), "\""),
		MidtransClientKey:    strings.Trim(getenv("MIDTRANS_CLIENT_KEY", ""), "\""),
		MidtransIsProduction: getenv("MIDTRANS_IS_PRODUCTION", "false") == "true",

		CloudinaryCloudName: getenv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getenv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getenv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getenv("CLOUDINARY_FOLDER", "storefront/content"),

		ContentTTL:     getDuration("CONTENT_TTL", 5*time.Minute),
		IdempotencyTTL: getDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		OutboxInterval: getDuration("OUTBOX_INTERVAL", 5*time.Second),
	}

	log.Printf("[config] APP_ENV=%s PORT=%s", cfg.Env, cfg.Port)
	log.Printf("[config] PAYMENT_GATEWAY=%s", cfg.PaymentGateway)
	return cfg
}

// CloudinaryEnabled reports whether content uploads go to Cloudinary instead of the backend.
func (c Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// SecureCookies is true outside development, where the SPA is served over HTTPS.
func (c Config) SecureCookies() bool {
	return c.Env == "production" || c.Env == "staging"
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
