package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort     string
	DatabasePath string // sqlite dosya yolu
	CORSOrigins  string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "shop_data.db"),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.DatabasePath == "shop_data.db" {
		log.Println("[WARN] DATABASE_PATH varsayılan değer kullanılıyor, veritabanı çalışma dizinine yazılacak.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
