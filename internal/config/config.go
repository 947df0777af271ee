package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	CORSOrigin string
	IsProd     bool
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("APP_PORT", "4000"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "wedding_planner"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
		IsProd:     os.Getenv("IS_PROD") == "true",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// DSN is the connection string for the application database.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// AdminDSN connects to the maintenance database instead of the application
// one; used only while ensuring the application database exists.
func (c *Config) AdminDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort)
}
