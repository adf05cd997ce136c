package repository

import (
	"context"

	"food-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodRepository struct {
	collection *mongo.Collection
}

func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{
		collection: db.Collection("food"),
	}
}

func (r *FoodRepository) Find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.Food, error) {
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	foods := []models.Food{}
	if err = cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *FoodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	var food models.Food
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) Create(ctx context.Context, food *models.Food) error {
	_, err := r.collection.InsertOne(ctx, food)
	return err
}

func (r *FoodRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Food, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Food
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *FoodRepository) ApplyPurchase(ctx context.Context, foodID primitive.ObjectID, purchase *models.Purchase) (int64, error) {
	update := bson.M{
		"$inc": bson.M{
			"quantity":      -purchase.Quantity,
			"purchaseCount": purchase.Quantity,
		},
		"$push": bson.M{"orders": purchase},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": foodID}, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
