package mongo

import (
	"context"
	"errors"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type expenseStore struct {
	expenses   *mongo.Collection
	categories categoryStore
	budgets    budgetStore
}

func (s expenseStore) List(ctx context.Context) ([]models.Expense, error) {
	cursor, err := s.expenses.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var docs []expenseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	expenses := make([]models.Expense, 0, len(docs))
	for _, doc := range docs {
		expense, err := s.resolve(ctx, doc)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, nil
}

func (s expenseStore) Get(ctx context.Context, id models.ID) (models.Expense, error) {
	oid, err := docID(id, "Expense")
	if err != nil {
		return models.Expense{}, err
	}

	var doc expenseDoc
	err = s.expenses.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Expense{}, storage.NotFound("Expense")
	}
	if err != nil {
		return models.Expense{}, err
	}

	return s.resolve(ctx, doc)
}

func (s expenseStore) Create(ctx context.Context, editable models.ExpenseEditable, owner string) (models.Expense, error) {
	refs, err := s.resolveReferences(ctx, editable)
	if err != nil {
		return models.Expense{}, err
	}

	amount, err := toDecimal128(*editable.Amount)
	if err != nil {
		return models.Expense{}, err
	}

	doc := expenseDoc{
		ID:         primitive.NewObjectID(),
		Name:       editable.Name,
		Amount:     amount,
		CategoryID: refs.categoryID,
		BudgetID:   refs.budgetID,
		UserID:     owner,
	}

	_, err = s.expenses.InsertOne(ctx, doc)
	if err != nil {
		return models.Expense{}, translateWriteError(err)
	}

	return doc.model(refs.category, refs.budget)
}

func (s expenseStore) Update(ctx context.Context, id models.ID, editable models.ExpenseEditable) (models.Expense, error) {
	oid, err := docID(id, "Expense")
	if err != nil {
		return models.Expense{}, err
	}

	refs, err := s.resolveReferences(ctx, editable)
	if err != nil {
		return models.Expense{}, err
	}

	amount, err := toDecimal128(*editable.Amount)
	if err != nil {
		return models.Expense{}, err
	}

	update := bson.M{
		"name":        editable.Name,
		"amount":      amount,
		"category_id": refs.categoryID,
	}
	unset := bson.M{}
	if refs.budgetID != nil {
		update["budget_id"] = *refs.budgetID
	} else {
		unset["budget_id"] = ""
	}

	operation := bson.M{"$set": update}
	if len(unset) > 0 {
		operation["$unset"] = unset
	}

	result, err := s.expenses.UpdateOne(ctx, bson.M{"_id": oid}, operation)
	if err != nil {
		return models.Expense{}, translateWriteError(err)
	}
	if result.MatchedCount == 0 {
		return models.Expense{}, storage.NotFound("Expense")
	}

	return s.Get(ctx, id)
}

func (s expenseStore) Delete(ctx context.Context, id models.ID) error {
	oid, err := docID(id, "Expense")
	if err != nil {
		return err
	}

	result, err := s.expenses.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return storage.NotFound("Expense")
	}

	return nil
}

// resolve loads the referenced category and budget of a stored expense.
func (s expenseStore) resolve(ctx context.Context, doc expenseDoc) (models.Expense, error) {
	category, err := s.categories.get(ctx, doc.CategoryID)
	if err != nil {
		return models.Expense{}, err
	}

	var budget *models.Budget
	if doc.BudgetID != nil {
		resolved, err := s.budgets.get(ctx, *doc.BudgetID)
		if err != nil {
			return models.Expense{}, err
		}
		budget = &resolved
	}

	return doc.model(category, budget)
}

type references struct {
	categoryID primitive.ObjectID
	budgetID   *primitive.ObjectID
	category   models.Category
	budget     *models.Budget
}

// resolveReferences verifies that the referenced category and budget exist.
// A dangling reference is reported as not found for the referenced entity.
func (s expenseStore) resolveReferences(ctx context.Context, editable models.ExpenseEditable) (references, error) {
	categoryID, err := docID(editable.CategoryID, "Category")
	if err != nil {
		return references{}, err
	}

	category, err := s.categories.get(ctx, categoryID)
	if err != nil {
		return references{}, err
	}

	refs := references{categoryID: categoryID, category: category}

	if !editable.BudgetID.IsZero() {
		budgetID, err := docID(editable.BudgetID, "Budget")
		if err != nil {
			return references{}, err
		}

		budget, err := s.budgets.get(ctx, budgetID)
		if err != nil {
			return references{}, err
		}

		refs.budgetID = &budgetID
		refs.budget = &budget
	}

	return refs, nil
}
