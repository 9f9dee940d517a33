package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend selects the storage adapter the process runs with.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendMongo    Backend = "mongo"
)

// Defaults that must be overridden outside of local development.
const (
	DefaultJWTSecretKey = "change-me"
	DefaultAPIUsername  = "admin"
	DefaultAPIPassword  = "admin"
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	// HTTP server
	Port string

	// Storage
	Backend     Backend
	DatabaseURL string // postgres DSN; empty means the SQLite fallback is used
	SQLitePath  string
	MongoURL    string
	MongoDBName string

	// Auth
	JWTSecretKey   string
	JWTAlgorithm   string
	JWTTokenExpiry time.Duration
	APIUsername    string
	APIPassword    string
}

// Load reads the configuration from the environment.
//
// The postgres DSN is taken from DATABASE_URL when set, otherwise assembled
// from the discrete POSTGRES_* variables. If neither is configured, the
// relational adapter falls back to a local SQLite file so that development
// and tests need no running database.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		SQLitePath: getEnv("SQLITE_DB_PATH", "data/expenses.db"),

		MongoURL:    getEnv("MONGO_URL", ""),
		MongoDBName: getEnv("MONGO_DB_NAME", ""),

		JWTSecretKey:   getEnv("JWT_SECRET_KEY", DefaultJWTSecretKey),
		JWTAlgorithm:   getEnv("JWT_ALGORITHM", "HS256"),
		JWTTokenExpiry: time.Duration(getEnvInt("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		APIUsername:    getEnv("API_USERNAME", DefaultAPIUsername),
		APIPassword:    getEnv("API_PASSWORD", DefaultAPIPassword),
	}

	// Backend selection: explicit DB_BACKEND wins, otherwise infer from the
	// presence of MONGO_URL.
	switch backend := getEnv("DB_BACKEND", ""); backend {
	case string(BackendPostgres), string(BackendMongo):
		cfg.Backend = Backend(backend)
	case "":
		if cfg.MongoURL != "" {
			cfg.Backend = BackendMongo
		} else {
			cfg.Backend = BackendPostgres
		}
	default:
		return nil, fmt.Errorf("invalid DB_BACKEND %q: must be %q or %q", backend, BackendPostgres, BackendMongo)
	}

	dsn, err := postgresURL()
	if err != nil {
		return nil, err
	}
	cfg.DatabaseURL = dsn

	return cfg, nil
}

// Validate checks the configuration for settings that would only fail at the
// first request instead of at startup.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.Backend == BackendMongo {
		if c.MongoURL == "" {
			errs = append(errs, "MONGO_URL must be set when using the mongo backend")
		}
		if c.MongoDBName == "" {
			errs = append(errs, "MONGO_DB_NAME must be set when using the mongo backend")
		}
	}

	switch c.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		errs = append(errs, fmt.Sprintf("invalid JWT_ALGORITHM %q: must be one of HS256, HS384, HS512", c.JWTAlgorithm))
	}

	if c.JWTTokenExpiry <= 0 {
		errs = append(errs, "JWT_ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	return nil
}

// RoutePrefix returns the path prefix the API is mounted under for the
// configured backend.
func (c *Config) RoutePrefix() string {
	return "/api/v1/" + string(c.Backend)
}

// UsingDefaultCredentials reports whether the placeholder API credentials are
// active. They must be overridden in any production deployment.
func (c *Config) UsingDefaultCredentials() bool {
	return c.APIUsername == DefaultAPIUsername && c.APIPassword == DefaultAPIPassword
}

// UsingDefaultSecret reports whether the placeholder JWT signing key is active.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecretKey == DefaultJWTSecretKey
}

// postgresURL resolves the relational DSN. DATABASE_URL takes precedence over
// the discrete POSTGRES_* components. An empty return value with a nil error
// means no postgres configuration is present.
func postgresURL() (string, error) {
	dsn := getEnv("DATABASE_URL", "")
	if dsn == "" {
		var err error
		dsn, err = urlFromComponents()
		if err != nil {
			return "", err
		}
	}

	if dsn == "" {
		return "", nil
	}

	// Managed platforms such as Render require encrypted transport and set
	// RENDER=true. FORCE_DB_SSL allows an explicit override in either
	// direction.
	if forceSSL() {
		var err error
		dsn, err = ensureSSLMode(dsn)
		if err != nil {
			return "", err
		}
	}

	if os.Getenv("RENDER") == "true" && (strings.Contains(dsn, "@localhost:") || strings.Contains(dsn, "@127.0.0.1:")) {
		return "", fmt.Errorf("DATABASE_URL points to localhost on Render, use the database service URL instead")
	}

	return dsn, nil
}

// urlFromComponents builds a postgres URL from the POSTGRES_* variables.
// It returns an empty string when none of them are set, and an error when
// only some of them are.
func urlFromComponents() (string, error) {
	required := []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_HOST", "POSTGRES_DB"}

	var missing []string
	var set int
	for _, name := range required {
		if os.Getenv(name) != "" {
			set++
		} else {
			missing = append(missing, name)
		}
	}

	if set == 0 {
		return "", nil
	}

	if len(missing) > 0 {
		return "", fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD")),
		Host:   fmt.Sprintf("%s:%s", os.Getenv("POSTGRES_HOST"), getEnv("POSTGRES_PORT", "5432")),
		Path:   os.Getenv("POSTGRES_DB"),
	}

	return u.String(), nil
}

func forceSSL() bool {
	if override := os.Getenv("FORCE_DB_SSL"); override != "" {
		return override == "1"
	}

	return os.Getenv("RENDER") == "true"
}

// ensureSSLMode appends sslmode=require to a postgres URL unless the query
// already sets one.
func ensureSSLMode(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid database URL: %w", err)
	}

	query := u.Query()
	if query.Get("sslmode") == "" {
		query.Set("sslmode", "require")
		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return parsed
}
