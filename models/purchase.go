package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Purchase is a record in the "purchases" collection. FoodName and Price
// are denormalized snapshots taken at purchase time.
type Purchase struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FoodID     primitive.ObjectID `json:"foodId" bson:"foodId"`
	FoodName   string             `json:"foodName" bson:"foodName"`
	Price      float64            `json:"price" bson:"price"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	BuyerName  string             `json:"buyerName" bson:"buyerName"`
	BuyerEmail string             `json:"buyerEmail" bson:"buyerEmail"`
	BuyingDate time.Time          `json:"buyingDate" bson:"buyingDate"`
}
