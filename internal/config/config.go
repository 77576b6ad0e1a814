package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP_ADDR    string
	DB_DRIVER    string
	DATABASE_URL string
	SQLITE_PATH  string

	JWT_SECRET string
	TOKEN_TTL  time.Duration

	KAFKA_BROKERS        string
	USER_EVENTS_TOPIC    string
	PRODUCT_EVENTS_TOPIC string

	ES_URL      string
	ES_USER     string
	ES_PASSWORD string
	ES_INDEX    string

	LOG_LEVEL string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		HTTP_ADDR:    getDefault("HTTP_ADDR", ":8080"),
		DB_DRIVER:    getDefault("DB_DRIVER", "postgres"),
		DATABASE_URL: os.Getenv("DATABASE_URL"),
		SQLITE_PATH:  getDefault("SQLITE_PATH", "inventory.db"),

		JWT_SECRET: os.Getenv("JWT_SECRET"),
		TOKEN_TTL:  parseDurationDefault(os.Getenv("TOKEN_TTL"), 10*time.Minute),

		KAFKA_BROKERS:        os.Getenv("KAFKA_BROKERS"),
		USER_EVENTS_TOPIC:    getDefault("USER_EVENTS_TOPIC", "user_events"),
		PRODUCT_EVENTS_TOPIC: getDefault("PRODUCT_EVENTS_TOPIC", "product_events"),

		ES_URL:      os.Getenv("ES_URL"),
		ES_USER:     os.Getenv("ES_USER"),
		ES_PASSWORD: os.Getenv("ES_PASSWORD"),
		ES_INDEX:    getDefault("ES_INDEX", "products"),

		LOG_LEVEL: getDefault("LOG_LEVEL", "info"),
	}

	return config, nil
}

func getDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func parseDurationDefault(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}
