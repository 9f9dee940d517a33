// Package postgres implements the relational storage adapter on gorm.
//
// It connects to PostgreSQL when a DSN is configured and falls back to a
// local SQLite file otherwise, so development setups and tests need no
// running database server.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/storage"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Options configures the adapter.
type Options struct {
	// URL is the postgres DSN. When empty, SQLitePath is used instead.
	URL string

	// SQLitePath is the SQLite database file used as fallback.
	SQLitePath string
}

// Store is the relational storage adapter.
type Store struct {
	db *gorm.DB
}

var _ storage.Store = &Store{}

// Connect opens the database, runs migrations and returns the adapter.
func Connect(opts Options) (*Store, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{Logger: log.Logger},
	}

	var db *gorm.DB
	var err error

	if opts.URL != "" {
		log.Debug().Msg("postgres DSN is configured, using postgresql")
		db, err = gorm.Open(postgres.Open(opts.URL), config)
	} else {
		log.Debug().Str("path", opts.SQLitePath).Msg("no postgres DSN, using sqlite database")

		if dir := filepath.Dir(opts.SQLitePath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, fmt.Errorf("could not create database directory: %w", err)
			}
		}

		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", opts.SQLitePath)), config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.AutoMigrate(categoryRow{}, budgetRow{}, expenseRow{}, incomeRow{})
	if err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	if err := registerCallbacks(db); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Categories() storage.CategoryStore { return categoryStore{s.db} }
func (s *Store) Budgets() storage.BudgetStore      { return budgetStore{s.db} }
func (s *Store) Expenses() storage.ExpenseStore    { return expenseStore{s.db} }
func (s *Store) Incomes() storage.IncomeStore      { return incomeStore{s.db} }

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// registerCallbacks attaches the error translation callbacks so that every
// query returns domain errors instead of driver errors.
func registerCallbacks(db *gorm.DB) error {
	for name, register := range map[string]func(string, func(*gorm.DB)) error{
		"query":  db.Callback().Query().After("*").Register,
		"create": db.Callback().Create().After("*").Register,
		"update": db.Callback().Update().After("*").Register,
		"delete": db.Callback().Delete().After("*").Register,
		"row":    db.Callback().Row().After("*").Register,
	} {
		if err := register(fmt.Sprintf("expense_tracker:after_%s", name), translateError); err != nil {
			return err
		}
	}

	return nil
}

// tableEntities maps table names to the user-facing entity names used in
// error messages.
var tableEntities = map[string]string{
	"categories": "Category",
	"budgets":    "Budget",
	"expenses":   "Expense",
	"incomes":    "Income",
}

// translateError rewrites database errors into the storage error taxonomy.
func translateError(db *gorm.DB) {
	err := db.Error
	if err == nil {
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		entity := tableEntities[db.Statement.Table]
		if entity == "" {
			entity = "Resource"
		}

		db.Error = storage.NotFound(entity)
		return
	}

	// Both unique indexes in the schema are on name columns.
	if isUniqueViolation(err) {
		db.Error = storage.Conflict("name")
		return
	}

	// A general error where we cannot provide more useful information to
	// the client. Log the cause so that server admins can debug.
	if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrConflict) {
		log.Error().Msgf("%T: %v", err, err.Error())
		db.Error = storage.ErrGeneral
	}
}

// isUniqueViolation detects unique constraint errors for both the sqlite
// fallback and postgres.
func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "unique constraint")
}
