package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/config"
	"github.com/expense-tracker/backend/internal/controllers/healthz"
	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/internal/router"
	"github.com/expense-tracker/backend/internal/storage"
	"github.com/expense-tracker/backend/internal/storage/mongo"
	"github.com/expense-tracker/backend/internal/storage/postgres"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, variables from the environment win
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.UsingDefaultCredentials() {
		log.Warn().Msg("API_USERNAME and API_PASSWORD are not set, using the default credentials. Do not run like this in production")
	}
	if cfg.UsingDefaultSecret() {
		log.Warn().Msg("JWT_SECRET_KEY is not set, tokens are signed with the default key. Do not run like this in production")
	}

	store, err := connect(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer store.Close()

	a, err := auth.New(auth.Config{
		Username:    cfg.APIUsername,
		Password:    cfg.APIPassword,
		SecretKey:   cfg.JWTSecretKey,
		Algorithm:   cfg.JWTAlgorithm,
		TokenExpiry: cfg.JWTTokenExpiry,
	})
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(a)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	co := v1.NewController(store, a)
	router.AttachRoutes(co, r.Group(cfg.RoutePrefix()))
	healthz.RegisterRoutes(r.Group("/healthz"), store)

	log.Info().Str("backend", string(cfg.Backend)).Str("prefix", cfg.RoutePrefix()).Msg("backend startup complete")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// connect opens the store for the configured backend.
func connect(cfg *config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return mongo.Connect(ctx, mongo.Options{
			URL:      cfg.MongoURL,
			Database: cfg.MongoDBName,
		})
	default:
		return postgres.Connect(postgres.Options{
			URL:        cfg.DatabaseURL,
			SQLitePath: cfg.SQLitePath,
		})
	}
}
