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
	Port        string
	DBUrl       string
	FrontendURL string
	// Comma separated extra origins allowed by CORS
	AllowedOrigins []string
	// Logging
	LogLevel  string
	LogFormat string
	// Auth: HS256 shared secret issued by the web frontend, or RS256 via JWKS
	JWTSecret string
	JWKSURL   string
	// Object storage (S3 / MinIO)
	S3Endpoint       string
	S3PublicEndpoint string
	S3Region         string
	S3Bucket         string
	S3AccessKey      string
	S3SecretKey      string
	UploadURLTTL     time.Duration
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitUploadThreshold int
	// Secondary sign-in address domain kept after the school mailbox expires
	LinkedEmailDomain string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored when the file is absent
	_ = godotenv.Load()

	s3Endpoint := strings.TrimRight(getEnv("S3_ENDPOINT", "http://minio:9000"), "/")

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBUrl:          getEnv("DATABASE_URL", ""),
		FrontendURL:    strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWKSURL:        getEnv("JWKS_URL", ""),
		// Object storage
		S3Endpoint:       s3Endpoint,
		S3PublicEndpoint: strings.TrimRight(getEnv("S3_PUBLIC_ENDPOINT", publicEndpointFor(s3Endpoint)), "/"),
		S3Region:         getEnv("S3_REGION", "us-east-1"),
		S3Bucket:         getEnv("S3_BUCKET", "alumni-directory"),
		S3AccessKey:      getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:      getEnv("S3_SECRET_KEY", "minioadmin"),
		UploadURLTTL:     time.Duration(getEnvInt("UPLOAD_URL_TTL_SECONDS", 300)) * time.Second,
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),
		LinkedEmailDomain:        strings.ToLower(getEnv("LINKED_EMAIL_DOMAIN", "gmail.com")),
	}

	if cfg.S3PublicEndpoint == "" {
		cfg.S3PublicEndpoint = publicEndpointFor(s3Endpoint)
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" && cfg.JWKSURL == "" {
		log.Println("WARNING: neither JWT_SECRET nor JWKS_URL is set. Every request will be rejected.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// publicEndpointFor rewrites the in-cluster MinIO host to one reachable from a browser.
func publicEndpointFor(endpoint string) string {
	endpoint = strings.Replace(endpoint, "http://minio:", "http://localhost:", 1)
	return strings.Replace(endpoint, "https://minio:", "https://localhost:", 1)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimRight(strings.TrimSpace(item), "/"); item != "" {
			out = append(out, item)
		}
	}
	return out
}
