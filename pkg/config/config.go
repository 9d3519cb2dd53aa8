package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	InputPath    = "input.json"
	OutputPath   = "output.json"
	OutputFormat = ""
	DataDir      = "."

	// Server settings
	ServerBind = "127.0.0.1"
	ServerPort = "8080"

	// Logging settings
	LogLevel    = "info"
	Environment = "development"

	// Exit non-zero when a transform fails
	Strict = false
)

// Init loads .env (if present) and applies environment overrides.
// It reports whether a .env file was loaded.
func Init() bool {
	loaded := godotenv.Load() == nil

	InputPath = getEnv("INPUT_PATH", "input.json")
	OutputPath = getEnv("OUTPUT_PATH", "output.json")
	OutputFormat = strings.ToLower(getEnv("OUTPUT_FORMAT", ""))
	DataDir = getEnv("DATA_DIR", ".")

	ServerBind = getEnv("SERVER_BIND", "127.0.0.1")
	ServerPort = getEnv("SERVER_PORT", "8080")

	LogLevel = getEnv("LOG_LEVEL", "info")
	Environment = getEnv("APP_ENV", "development")

	if s := os.Getenv("SHICI_STRICT"); s != "" {
		if val, err := strconv.ParseBool(s); err == nil {
			Strict = val
		}
	}

	return loaded
}

// ServerAddr is the listen address for the HTTP API.
func ServerAddr() string {
	return ServerBind + ":" + ServerPort
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
