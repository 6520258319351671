package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// insecureDefaultSecret signs session cookies when SECRET_KEY is unset.
// Fine for local development, never for a real deployment.
const insecureDefaultSecret = "pf9Wkove4IKEAXvy-cQkeDPhv9Cb3Ag-wyJILbq_dFw"

type Config struct {
	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	SecretKey string

	// Server Configuration
	Port string
	Env  string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// A missing .env file is not an error; everything has a default.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := &Config{
		MongoURI:  getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:    getEnvOrDefault("DB_NAME", "watchlist"),
		SecretKey: getEnvOrDefault("SECRET_KEY", insecureDefaultSecret),
		Port:      getEnvOrDefault("PORT", "8080"),
		Env:       getEnvOrDefault("GO_ENV", "development"),
	}

	if cfg.SecretKey == insecureDefaultSecret {
		log.Println("Warning: SECRET_KEY not set, using insecure default")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
