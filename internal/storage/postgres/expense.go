package postgres

import (
	"context"

	"github.com/expense-tracker/backend/internal/models"
	"gorm.io/gorm"
)

type expenseStore struct {
	db *gorm.DB
}

func (s expenseStore) List(ctx context.Context) ([]models.Expense, error) {
	var rows []expenseRow
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Budget").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	expenses := make([]models.Expense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, row.model())
	}

	return expenses, nil
}

func (s expenseStore) Get(ctx context.Context, id models.ID) (models.Expense, error) {
	n, err := rowID(id, "Expense")
	if err != nil {
		return models.Expense{}, err
	}

	var row expenseRow
	err = s.db.WithContext(ctx).
		Preload("Category").
		Preload("Budget").
		First(&row, n).Error
	if err != nil {
		return models.Expense{}, err
	}

	return row.model(), nil
}

func (s expenseStore) Create(ctx context.Context, editable models.ExpenseEditable, owner string) (models.Expense, error) {
	var row expenseRow

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refs, err := resolveReferences(tx, editable)
		if err != nil {
			return err
		}

		row = expenseRow{
			Name:       editable.Name,
			Amount:     *editable.Amount,
			CategoryID: refs.categoryID,
			BudgetID:   refs.budgetID,
			UserID:     owner,
		}

		return tx.Create(&row).Error
	})
	if err != nil {
		return models.Expense{}, err
	}

	return s.Get(ctx, models.NumericID(row.ID))
}

func (s expenseStore) Update(ctx context.Context, id models.ID, editable models.ExpenseEditable) (models.Expense, error) {
	n, err := rowID(id, "Expense")
	if err != nil {
		return models.Expense{}, err
	}

	// All mutable fields are replaced as a single unit: either the whole
	// update commits or the row stays untouched.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row expenseRow
		if err := tx.First(&row, n).Error; err != nil {
			return err
		}

		refs, err := resolveReferences(tx, editable)
		if err != nil {
			return err
		}

		row.Name = editable.Name
		row.Amount = *editable.Amount
		row.CategoryID = refs.categoryID
		row.BudgetID = refs.budgetID

		return tx.Save(&row).Error
	})
	if err != nil {
		return models.Expense{}, err
	}

	return s.Get(ctx, id)
}

func (s expenseStore) Delete(ctx context.Context, id models.ID) error {
	n, err := rowID(id, "Expense")
	if err != nil {
		return err
	}

	var row expenseRow
	if err := s.db.WithContext(ctx).First(&row, n).Error; err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&row).Error
}

type references struct {
	categoryID uint64
	budgetID   *uint64
}

// resolveReferences verifies that the referenced category and budget exist.
// A dangling reference is reported as not found for the referenced entity.
func resolveReferences(tx *gorm.DB, editable models.ExpenseEditable) (references, error) {
	categoryID, err := rowID(editable.CategoryID, "Category")
	if err != nil {
		return references{}, err
	}

	if err := tx.First(&categoryRow{}, categoryID).Error; err != nil {
		return references{}, err
	}

	refs := references{categoryID: categoryID}

	if !editable.BudgetID.IsZero() {
		budgetID, err := rowID(editable.BudgetID, "Budget")
		if err != nil {
			return references{}, err
		}

		if err := tx.First(&budgetRow{}, budgetID).Error; err != nil {
			return references{}, err
		}

		refs.budgetID = &budgetID
	}

	return refs, nil
}
