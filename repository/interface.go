package repository

import (
	"context"

	"food-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FoodRepo defines the data access operations over the food collection.
type FoodRepo interface {
	Find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.Food, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error)
	Create(ctx context.Context, food *models.Food) error
	// UpdateByID applies a $set update and returns the post-update document.
	// Returns mongo.ErrNoDocuments when no document with that id exists.
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Food, error)
	// ApplyPurchase atomically decrements stock, increments purchaseCount and
	// appends the purchase snapshot to the orders array. Returns the number of
	// documents matched by the food id.
	ApplyPurchase(ctx context.Context, foodID primitive.ObjectID, purchase *models.Purchase) (int64, error)
}

// PurchaseRepo defines the data access operations over the purchases collection.
type PurchaseRepo interface {
	Create(ctx context.Context, purchase *models.Purchase) error
	FindByBuyer(ctx context.Context, email string) ([]models.Purchase, error)
	// DeleteByID removes one purchase and reports how many documents were deleted.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}
