package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Question pool
	QuestionsDB   string // SQLite file holding the pool
	QuestionsSeed string // optional JSON file imported at startup
	PoolSize      int    // expected number of questions in the pool

	// Quiz
	RandomSampleSize   int
	HighScoreThreshold int // percentage
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:      mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:    mustGetDuration("SHUTDOWN_TIMEOUT"),
		QuestionsDB:        getenvDefault("QUESTIONS_DB", "quiz.db"),
		QuestionsSeed:      os.Getenv("QUESTIONS_SEED"),
		PoolSize:           getenvInt("POOL_SIZE", 50),
		RandomSampleSize:   getenvInt("RANDOM_SAMPLE_SIZE", 10),
		HighScoreThreshold: getenvInt("HIGH_SCORE_THRESHOLD", 80),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}
