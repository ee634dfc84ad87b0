package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort      string
	DatabaseDSN   string // empty = local-only mode, no remote mirror
	JWTSecret     string
	CORSOrigins   string
	PublicBaseURL string // base for customer share links
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:5173"),
	}

	if cfg.DatabaseDSN == "" {
		log.Println("[WARN] DATABASE_DSN no definido: modo local sin sincronización remota.")
	} else {
		if cfg.JWTSecret == "" {
			log.Fatal("[FATAL] JWT_SECRET no definido. Es obligatorio cuando hay base de datos remota.")
		}
		if len(cfg.JWTSecret) < 32 {
			log.Fatal("[FATAL] JWT_SECRET debe tener al menos 32 caracteres.")
		}
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS usa el valor por defecto; define tu dominio en producción.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
