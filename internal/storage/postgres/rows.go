package postgres

import (
	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

type categoryRow struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (categoryRow) TableName() string { return "categories" }

func (r categoryRow) model() models.Category {
	return models.Category{
		ID:   models.NumericID(r.ID),
		Name: r.Name,
	}
}

type budgetRow struct {
	ID     uint64          `gorm:"primaryKey"`
	Name   string          `gorm:"uniqueIndex;not null"`
	Amount decimal.Decimal `gorm:"type:DECIMAL(12,2);not null"`
	UserID string          `gorm:"index"`
}

func (budgetRow) TableName() string { return "budgets" }

func (r budgetRow) model() models.Budget {
	return models.Budget{
		ID:     models.NumericID(r.ID),
		Name:   r.Name,
		Amount: r.Amount,
		Owner:  r.UserID,
	}
}

type expenseRow struct {
	ID         uint64          `gorm:"primaryKey"`
	Name       string          `gorm:"index;not null"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(12,2);not null"`
	CategoryID uint64          `gorm:"not null"`
	Category   categoryRow     `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	BudgetID   *uint64
	Budget     *budgetRow `gorm:"foreignKey:BudgetID;constraint:OnDelete:RESTRICT"`
	UserID     string     `gorm:"index"`
}

func (expenseRow) TableName() string { return "expenses" }

// model converts the row to the entity contract. Category and Budget must be
// preloaded.
func (r expenseRow) model() models.Expense {
	expense := models.Expense{
		ID:       models.NumericID(r.ID),
		Name:     r.Name,
		Amount:   r.Amount,
		Category: r.Category.model(),
		Owner:    r.UserID,
	}

	if r.Budget != nil {
		budget := r.Budget.model()
		expense.Budget = &budget
	}

	return expense
}

type incomeRow struct {
	ID     uint64          `gorm:"primaryKey"`
	Name   string          `gorm:"index;not null"`
	Amount decimal.Decimal `gorm:"type:DECIMAL(12,2);not null"`
}

func (incomeRow) TableName() string { return "incomes" }

func (r incomeRow) model() models.Income {
	return models.Income{
		ID:     models.NumericID(r.ID),
		Name:   r.Name,
		Amount: r.Amount,
	}
}
