package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	MongoURL            string
	DBName              string
	MongoConnectTimeout time.Duration

	CORSOrigins    []string
	RequestTimeout time.Duration
}

// Load reads the environment, after loading envFiles (".env" when none are
// given). Missing dotenv files are not an error; missing MONGO_URL or DB_NAME is.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	connectTimeout, err := time.ParseDuration(getEnv("MONGO_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		connectTimeout = 10 * time.Second
	}

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	mongoURL, err := requireEnv("MONGO_URL")
	if err != nil {
		return nil, err
	}
	dbName, err := requireEnv("DB_NAME")
	if err != nil {
		return nil, err
	}

	return &Config{
		Port: getEnv("PORT", "8001"),
		Env:  getEnv("ENV", "development"),

		MongoURL:            mongoURL,
		DBName:              dbName,
		MongoConnectTimeout: connectTimeout,

		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
		RequestTimeout: requestTimeout,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func requireEnv(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", fmt.Errorf("required environment variable not set: %s", key)
	}
	return value, nil
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
