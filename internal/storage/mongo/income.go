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

type incomeStore struct {
	collection *mongo.Collection
}

func (s incomeStore) List(ctx context.Context) ([]models.Income, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var docs []incomeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	incomes := make([]models.Income, 0, len(docs))
	for _, doc := range docs {
		income, err := doc.model()
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}

	return incomes, nil
}

func (s incomeStore) Get(ctx context.Context, id models.ID) (models.Income, error) {
	oid, err := docID(id, "Income")
	if err != nil {
		return models.Income{}, err
	}

	var doc incomeDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Income{}, storage.NotFound("Income")
	}
	if err != nil {
		return models.Income{}, err
	}

	return doc.model()
}

func (s incomeStore) Create(ctx context.Context, editable models.IncomeEditable) (models.Income, error) {
	amount, err := toDecimal128(*editable.Amount)
	if err != nil {
		return models.Income{}, err
	}

	doc := incomeDoc{
		ID:     primitive.NewObjectID(),
		Name:   editable.Name,
		Amount: amount,
	}

	_, err = s.collection.InsertOne(ctx, doc)
	if err != nil {
		return models.Income{}, translateWriteError(err)
	}

	return doc.model()
}
