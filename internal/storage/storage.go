// Package storage defines the entity contract both persistence adapters
// implement. The route layer only ever talks to these interfaces; the
// backend is picked once at startup.
package storage

import (
	"context"

	"github.com/expense-tracker/backend/internal/models"
)

// Store bundles the per-entity repositories of one backend.
type Store interface {
	Categories() CategoryStore
	Budgets() BudgetStore
	Expenses() ExpenseStore
	Incomes() IncomeStore

	// Ping verifies the backend connection is usable.
	Ping(ctx context.Context) error

	// Close releases the connection pool. The store must not be used
	// afterwards.
	Close() error
}

// CategoryStore persists categories.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id models.ID) (models.Category, error)
	Create(ctx context.Context, editable models.CategoryEditable) (models.Category, error)
}

// BudgetStore persists budgets. owner is the principal creating the budget,
// empty for unauthenticated requests.
type BudgetStore interface {
	List(ctx context.Context) ([]models.Budget, error)
	Get(ctx context.Context, id models.ID) (models.Budget, error)
	Create(ctx context.Context, editable models.BudgetEditable, owner string) (models.Budget, error)
	Update(ctx context.Context, id models.ID, editable models.BudgetEditable) (models.Budget, error)
}

// ExpenseStore persists expenses. Create and Update verify that the
// referenced category (and budget, when set) exist; Update replaces all
// mutable fields as a single atomic unit.
type ExpenseStore interface {
	List(ctx context.Context) ([]models.Expense, error)
	Get(ctx context.Context, id models.ID) (models.Expense, error)
	Create(ctx context.Context, editable models.ExpenseEditable, owner string) (models.Expense, error)
	Update(ctx context.Context, id models.ID, editable models.ExpenseEditable) (models.Expense, error)
	Delete(ctx context.Context, id models.ID) error
}

// IncomeStore persists incomes.
type IncomeStore interface {
	List(ctx context.Context) ([]models.Income, error)
	Get(ctx context.Context, id models.ID) (models.Income, error)
	Create(ctx context.Context, editable models.IncomeEditable) (models.Income, error)
}
