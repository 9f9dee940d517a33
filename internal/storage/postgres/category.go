package postgres

import (
	"context"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/storage"
	"gorm.io/gorm"
)

// rowID converts an opaque ID to a relational key. IDs that are not numeric
// cannot match any row, so they are reported as not found for the entity.
func rowID(id models.ID, entity string) (uint64, error) {
	n, err := id.Uint64()
	if err != nil {
		return 0, storage.NotFound(entity)
	}

	return n, nil
}

type categoryStore struct {
	db *gorm.DB
}

func (s categoryStore) List(ctx context.Context) ([]models.Category, error) {
	var rows []categoryRow
	err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.model())
	}

	return categories, nil
}

func (s categoryStore) Get(ctx context.Context, id models.ID) (models.Category, error) {
	n, err := rowID(id, "Category")
	if err != nil {
		return models.Category{}, err
	}

	var row categoryRow
	err = s.db.WithContext(ctx).First(&row, n).Error
	if err != nil {
		return models.Category{}, err
	}

	return row.model(), nil
}

func (s categoryStore) Create(ctx context.Context, editable models.CategoryEditable) (models.Category, error) {
	row := categoryRow{Name: editable.Name}

	err := s.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		return models.Category{}, err
	}

	return row.model(), nil
}
