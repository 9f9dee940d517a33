// Package mongo implements the document storage adapter on the official
// MongoDB driver.
//
// One collection per entity. Unlike the relational adapter there are no
// database-level foreign keys, so reference checks on expenses are
// application-level lookups.
package mongo

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Options configures the adapter.
type Options struct {
	// URL is the mongodb connection string.
	URL string

	// Database is the database name.
	Database string
}

// Store is the document storage adapter.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ storage.Store = &Store{}

// Connect connects to MongoDB and creates the collection indexes.
func Connect(ctx context.Context, opts Options) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to reach mongodb: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(opts.Database),
	}

	if err := s.createIndexes(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// createIndexes enforces the name uniqueness of categories and budgets.
func (s *Store) createIndexes(ctx context.Context) error {
	nameUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, collection := range []string{"categories", "budgets"} {
		_, err := s.db.Collection(collection).Indexes().CreateOne(ctx, nameUnique)
		if err != nil {
			return fmt.Errorf("failed to create index on %s: %w", collection, err)
		}
	}

	return nil
}

func (s *Store) Categories() storage.CategoryStore { return categoryStore{s.db.Collection("categories")} }
func (s *Store) Budgets() storage.BudgetStore      { return budgetStore{s.db.Collection("budgets")} }
func (s *Store) Expenses() storage.ExpenseStore {
	return expenseStore{
		expenses:   s.db.Collection("expenses"),
		categories: categoryStore{s.db.Collection("categories")},
		budgets:    budgetStore{s.db.Collection("budgets")},
	}
}
func (s *Store) Incomes() storage.IncomeStore { return incomeStore{s.db.Collection("incomes")} }

// Ping verifies the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}

// docID converts an opaque ID to an ObjectID. IDs that are not valid
// ObjectID hex strings cannot match any document, so they are reported as
// not found for the entity.
func docID(id models.ID, entity string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id.String())
	if err != nil {
		return primitive.NilObjectID, storage.NotFound(entity)
	}

	return oid, nil
}

// translateWriteError rewrites driver write errors into the storage error
// taxonomy.
func translateWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		// Both unique indexes are on name fields.
		return storage.Conflict("name")
	}

	return err
}
