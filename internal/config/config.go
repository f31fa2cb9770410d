package config

import "os"

// Config holds environment-driven configuration. Mains call godotenv.Load()
// before Load so a local .env file can supply these.
type Config struct {
	Addr         string
	DatabaseURL  string
	AllowOrigins string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	origins := os.Getenv("CORS_ALLOW_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	return Config{
		Addr:         addr,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		AllowOrigins: origins,
	}
}
