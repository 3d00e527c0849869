package main

import (
	"os"
	"time"
)

type Config struct {
	HTTPAddr    string
	ScenarioDir string
	LogLevel    string
	CORSOrigins string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func LoadConfig() Config {
	return Config{
		HTTPAddr:    getenv("ATP_HTTP_ADDR", ":8080"),
		ScenarioDir: getenv("ATP_SCENARIO_DIR", ""),
		LogLevel:    getenv("ATP_LOG_LEVEL", "info"),
		CORSOrigins: getenv("ATP_CORS_ORIGINS", "*"),
	}
}

const (
	ShutdownGrace = 10 * time.Second
)
