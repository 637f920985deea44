package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Port      string
	StaticDir string
}

// Load reads configuration from the environment, first probing for a .env
// file in the working directory and up to two parents. Every setting has a
// default, so a missing .env is not an error.
func Load(logger *zap.Logger) Config {
	loadEnv(logger)

	return Config{
		Port:      getenv("PORT", "3000"),
		StaticDir: getenv("STATIC_DIR", "./web"),
	}
}

func loadEnv(logger *zap.Logger) {
	wd, err := os.Getwd()
	if err != nil {
		logger.Warn("could not determine working directory", zap.Error(err))
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			logger.Info("loaded environment variables", zap.String("path", envPath))
			return
		}
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
