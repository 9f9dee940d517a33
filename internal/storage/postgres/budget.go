package postgres

import (
	"context"

	"github.com/expense-tracker/backend/internal/models"
	"gorm.io/gorm"
)

type budgetStore struct {
	db *gorm.DB
}

func (s budgetStore) List(ctx context.Context) ([]models.Budget, error) {
	var rows []budgetRow
	err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]models.Budget, 0, len(rows))
	for _, row := range rows {
		budgets = append(budgets, row.model())
	}

	return budgets, nil
}

func (s budgetStore) Get(ctx context.Context, id models.ID) (models.Budget, error) {
	n, err := rowID(id, "Budget")
	if err != nil {
		return models.Budget{}, err
	}

	var row budgetRow
	err = s.db.WithContext(ctx).First(&row, n).Error
	if err != nil {
		return models.Budget{}, err
	}

	return row.model(), nil
}

func (s budgetStore) Create(ctx context.Context, editable models.BudgetEditable, owner string) (models.Budget, error) {
	row := budgetRow{
		Name:   editable.Name,
		Amount: *editable.Amount,
		UserID: owner,
	}

	err := s.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		return models.Budget{}, err
	}

	return row.model(), nil
}

func (s budgetStore) Update(ctx context.Context, id models.ID, editable models.BudgetEditable) (models.Budget, error) {
	n, err := rowID(id, "Budget")
	if err != nil {
		return models.Budget{}, err
	}

	var row budgetRow
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, n).Error; err != nil {
			return err
		}

		row.Name = editable.Name
		row.Amount = *editable.Amount

		return tx.Save(&row).Error
	})
	if err != nil {
		return models.Budget{}, err
	}

	return row.model(), nil
}
