package repository

import (
	"context"

	"food-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PurchaseRepository struct {
	collection *mongo.Collection
}

func NewPurchaseRepository(db *mongo.Database) *PurchaseRepository {
	return &PurchaseRepository{
		collection: db.Collection("purchases"),
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, purchase *models.Purchase) error {
	_, err := r.collection.InsertOne(ctx, purchase)
	return err
}

func (r *PurchaseRepository) FindByBuyer(ctx context.Context, email string) ([]models.Purchase, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"buyerEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	purchases := []models.Purchase{}
	if err = cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *PurchaseRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
