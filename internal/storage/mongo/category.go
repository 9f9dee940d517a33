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

type categoryStore struct {
	collection *mongo.Collection
}

func (s categoryStore) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var docs []categoryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, doc.model())
	}

	return categories, nil
}

func (s categoryStore) Get(ctx context.Context, id models.ID) (models.Category, error) {
	oid, err := docID(id, "Category")
	if err != nil {
		return models.Category{}, err
	}

	return s.get(ctx, oid)
}

func (s categoryStore) get(ctx context.Context, oid primitive.ObjectID) (models.Category, error) {
	var doc categoryDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Category{}, storage.NotFound("Category")
	}
	if err != nil {
		return models.Category{}, err
	}

	return doc.model(), nil
}

func (s categoryStore) Create(ctx context.Context, editable models.CategoryEditable) (models.Category, error) {
	doc := categoryDoc{
		ID:   primitive.NewObjectID(),
		Name: editable.Name,
	}

	_, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return models.Category{}, translateWriteError(err)
	}

	return doc.model(), nil
}
