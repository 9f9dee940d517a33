package mongo

import (
	"context"
	"errors"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type budgetStore struct {
	collection *mongo.Collection
}

func (s budgetStore) List(ctx context.Context) ([]models.Budget, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var docs []budgetDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	budgets := make([]models.Budget, 0, len(docs))
	for _, doc := range docs {
		budget, err := doc.model()
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}

	return budgets, nil
}

func (s budgetStore) Get(ctx context.Context, id models.ID) (models.Budget, error) {
	oid, err := docID(id, "Budget")
	if err != nil {
		return models.Budget{}, err
	}

	return s.get(ctx, oid)
}

func (s budgetStore) get(ctx context.Context, oid primitive.ObjectID) (models.Budget, error) {
	var doc budgetDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Budget{}, storage.NotFound("Budget")
	}
	if err != nil {
		return models.Budget{}, err
	}

	return doc.model()
}

func (s budgetStore) Create(ctx context.Context, editable models.BudgetEditable, owner string) (models.Budget, error) {
	amount, err := toDecimal128(*editable.Amount)
	if err != nil {
		return models.Budget{}, err
	}

	doc := budgetDoc{
		ID:     primitive.NewObjectID(),
		Name:   editable.Name,
		Amount: amount,
		UserID: owner,
	}

	_, err = s.collection.InsertOne(ctx, doc)
	if err != nil {
		return models.Budget{}, translateWriteError(err)
	}

	return doc.model()
}

func (s budgetStore) Update(ctx context.Context, id models.ID, editable models.BudgetEditable) (models.Budget, error) {
	oid, err := docID(id, "Budget")
	if err != nil {
		return models.Budget{}, err
	}

	amount, err := toDecimal128(*editable.Amount)
	if err != nil {
		return models.Budget{}, err
	}

	var doc budgetDoc
	err = s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": editable.Name, "amount": amount}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Budget{}, storage.NotFound("Budget")
	}
	if err != nil {
		return models.Budget{}, translateWriteError(err)
	}

	return doc.model()
}
