package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultOrigin = "http://localhost:3000"

type Config struct {
	DBDriver       string
	DBUrl          string
	APIKey         string
	ServerPort     string
	GinMode        string
	LogMode        string
	LogFile        string
	AllowedOrigins []string
}

func Load() *Config {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	return &Config{
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBUrl:          getEnv("DATABASE_URL", "cafes.db"),
		APIKey:         getEnv("API_KEY", "TopSecretAPIKey"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogMode:        getEnv("LOG_MODE", "development"),
		LogFile:        getEnv("LOG_FILE", ""),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", defaultOrigin)),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{defaultOrigin}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
