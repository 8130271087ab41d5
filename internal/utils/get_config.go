package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser    string `yaml:"DB_USER"`
	DBPass    string `yaml:"DB_PASS"`
	DBCluster string `yaml:"DB_CLUSTER"`

	// Server configuration
	Port        string `yaml:"PORT"`
	Environment string `yaml:"ENVIRONMENT"`
}

var config Config

// LoadConfig reads environment variables (with .env support) and overlays
// values from config.yaml when the file is present. Environment variables win.
func LoadConfig() {
	_ = godotenv.Load()

	if file, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(file, &config); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
		}
	}

	config.DBUser = getEnv("DB_USER", config.DBUser)
	config.DBPass = getEnv("DB_PASS", config.DBPass)
	config.DBCluster = getEnv("DB_CLUSTER", config.DBCluster)
	config.Port = getEnv("PORT", config.Port)
	config.Environment = getEnv("ENVIRONMENT", config.Environment)

	if config.Port == "" {
		config.Port = "3000"
	}
	if config.Environment == "" {
		config.Environment = "development"
	}
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_PASS":
		return config.DBPass
	case "DB_CLUSTER":
		return config.DBCluster
	case "PORT":
		return config.Port
	case "ENVIRONMENT":
		return config.Environment
	default:
		return ""
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
