package mongo

import (
	"fmt"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// toDecimal128 converts an amount to its BSON Decimal128 representation.
func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	parsed, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("cannot store amount %s: %w", d, err)
	}

	return parsed, nil
}

// fromDecimal128 converts a stored amount back to a decimal.
func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot read stored amount %s: %w", d, err)
	}

	return parsed, nil
}

type categoryDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (d categoryDoc) model() models.Category {
	return models.Category{
		ID:   models.HexID(d.ID.Hex()),
		Name: d.Name,
	}
}

type budgetDoc struct {
	ID     primitive.ObjectID   `bson:"_id,omitempty"`
	Name   string               `bson:"name"`
	Amount primitive.Decimal128 `bson:"amount"`
	UserID string               `bson:"user_id,omitempty"`
}

func (d budgetDoc) model() (models.Budget, error) {
	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return models.Budget{}, err
	}

	return models.Budget{
		ID:     models.HexID(d.ID.Hex()),
		Name:   d.Name,
		Amount: amount,
		Owner:  d.UserID,
	}, nil
}

type expenseDoc struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Name       string               `bson:"name"`
	Amount     primitive.Decimal128 `bson:"amount"`
	CategoryID primitive.ObjectID   `bson:"category_id"`
	BudgetID   *primitive.ObjectID  `bson:"budget_id,omitempty"`
	UserID     string               `bson:"user_id,omitempty"`
}

// model converts the document to the entity contract with the referenced
// category and budget already resolved.
func (d expenseDoc) model(category models.Category, budget *models.Budget) (models.Expense, error) {
	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return models.Expense{}, err
	}

	return models.Expense{
		ID:       models.HexID(d.ID.Hex()),
		Name:     d.Name,
		Amount:   amount,
		Category: category,
		Budget:   budget,
		Owner:    d.UserID,
	}, nil
}

type incomeDoc struct {
	ID     primitive.ObjectID   `bson:"_id,omitempty"`
	Name   string               `bson:"name"`
	Amount primitive.Decimal128 `bson:"amount"`
}

func (d incomeDoc) model() (models.Income, error) {
	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return models.Income{}, err
	}

	return models.Income{
		ID:     models.HexID(d.ID.Hex()),
		Name:   d.Name,
		Amount: amount,
	}, nil
}
