package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Description is the nested description block of a food document.
type Description struct {
	ShortDescription string   `json:"shortDescription" bson:"shortDescription"`
	Ingredients      []string `json:"ingredients" bson:"ingredients"`
	MakingProcedure  string   `json:"makingProcedure" bson:"makingProcedure"`
	FoodOrigin       string   `json:"foodOrigin" bson:"foodOrigin"`
}

// AddedBy identifies the user who listed a food item.
type AddedBy struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Food is a listing in the "food" collection. Orders holds an embedded
// snapshot of every purchase made against this item; the purchases
// collection keeps its own copy and no constraint keeps the two in sync.
type Food struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Image         string             `json:"image" bson:"image"`
	Category      string             `json:"category" bson:"category"`
	Quantity      int                `json:"quantity" bson:"quantity"`
	Price         float64            `json:"price" bson:"price"`
	Description   Description        `json:"description" bson:"description"`
	AddedBy       AddedBy            `json:"addedBy" bson:"addedBy"`
	PurchaseCount int                `json:"purchaseCount" bson:"purchaseCount"`
	Orders        []Purchase         `json:"orders" bson:"orders"`
	AddedDate     time.Time          `json:"addedDate" bson:"addedDate"`
}
