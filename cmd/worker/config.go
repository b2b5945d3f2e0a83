package main

import (
	"log"
	"os"
	"strconv"
)

// Config holds all configuration for the worker.
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Concurrency   int
	LegacyDir     string
}

func loadConfig() *Config {
	cfg := &Config{
		RedisAddr:     getEnv("REDIS_HOST", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		Concurrency:   getEnvInt("WORKER_CONCURRENCY", 10),
		LegacyDir:     getEnv("LEGACY_EXPORT_DIR", os.TempDir()),
	}

	log.Printf("[Config] Redis: %s, legacy export dir: %s", cfg.RedisAddr, cfg.LegacyDir)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[Config] invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
