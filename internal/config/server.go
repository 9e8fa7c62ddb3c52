package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/san-kum/shotsim/internal/ground"
)

// ServerConfig configures the HTTP surface. Values come from the
// environment, optionally seeded from a .env file.
type ServerConfig struct {
	Port        string
	Environment string
	Surface     string
}

func LoadServer() *ServerConfig {
	// .env is optional
	_ = godotenv.Load()

	return &ServerConfig{
		Port:        getEnv("SHOTSIM_PORT", "8080"),
		Environment: getEnv("SHOTSIM_ENV", "development"),
		Surface:     getEnv("SHOTSIM_SURFACE", ground.DefaultSurface),
	}
}

func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
