package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	Port      string
	DBDriver  string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	// charge settings for order placement
	GSTRate         float64
	DeliveryCharges float64

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	OTPTTL        time.Duration

	SMTPAddr     string
	SMTPHost     string
	FromEmail    string
	FromPassword string

	S3Bucket  string
	AWSRegion string

	GatewayURL    string
	GatewayAPIKey string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env is optional outside local dev
	_ = godotenv.Load()

	return &Config{
		Env:       getEnv("APP_ENV", "development"),
		Port:      getEnv("PORT", "8000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "dishpatch.db"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),

		GSTRate:         getEnvFloat("GST_RATE", 5),
		DeliveryCharges: getEnvFloat("DELIVERY_CHARGES", 30),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		OTPTTL:        getEnvDuration("OTP_TTL", 5*time.Minute),

		SMTPAddr:     getEnv("SMTP_ADDRESS", "smtp.gmail.com:587"),
		SMTPHost:     getEnv("FROM_EMAIL_SMTP", "smtp.gmail.com"),
		FromEmail:    os.Getenv("FROM_EMAIL"),
		FromPassword: os.Getenv("FROM_EMAIL_PASSWORD"),

		S3Bucket:  getEnv("S3_BUCKET", "dishpatch-images"),
		AWSRegion: getEnv("AWS_REGION", "ap-south-1"),

		GatewayURL:    getEnv("PAYMENT_GATEWAY_URL", "http://localhost:9090"),
		GatewayAPIKey: os.Getenv("PAYMENT_GATEWAY_API_KEY"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@dishpatch.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
