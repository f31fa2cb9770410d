package main

import (
	"database/sql"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
	"github.com/PaulElielk/Data-mining-Project/internal/config"
	"github.com/PaulElielk/Data-mining-Project/internal/product"
	"github.com/PaulElielk/Data-mining-Project/internal/recommendation"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(requestLogger(logger))

	registry := catalog.Default()

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(registry, productRepo)
	productHandler := product.NewHandler(productService, registry, logger)

	recommendationService := recommendation.NewService(registry, recommendation.NewPostgresRepository(db), productRepo)
	recommendationHandler := recommendation.NewHandler(recommendationService, registry, logger)

	recommendationHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)

	logger.Info().Str("addr", cfg.Addr).Strs("categories", registry.Names()).Msg("starting catalog API")
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func mustOpenDB(databaseURL string) *sql.DB {
	if databaseURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func requestLogger(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info().
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", c.Response().StatusCode()).
			Dur("took", time.Since(start)).
			Msg("request")
		return err
	}
}
