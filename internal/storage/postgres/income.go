package postgres

import (
	"context"

	"github.com/expense-tracker/backend/internal/models"
	"gorm.io/gorm"
)

type incomeStore struct {
	db *gorm.DB
}

func (s incomeStore) List(ctx context.Context) ([]models.Income, error) {
	var rows []incomeRow
	err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	incomes := make([]models.Income, 0, len(rows))
	for _, row := range rows {
		incomes = append(incomes, row.model())
	}

	return incomes, nil
}

func (s incomeStore) Get(ctx context.Context, id models.ID) (models.Income, error) {
	n, err := rowID(id, "Income")
	if err != nil {
		return models.Income{}, err
	}

	var row incomeRow
	err = s.db.WithContext(ctx).First(&row, n).Error
	if err != nil {
		return models.Income{}, err
	}

	return row.model(), nil
}

func (s incomeStore) Create(ctx context.Context, editable models.IncomeEditable) (models.Income, error) {
	row := incomeRow{
		Name:   editable.Name,
		Amount: *editable.Amount,
	}

	err := s.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		return models.Income{}, err
	}

	return row.model(), nil
}
