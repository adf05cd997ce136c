package controllers

import (
	"errors"
	"strconv"
	"strings"

	"food-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AddFoodRequest defines the expected body for creating a listing. Every
// field is required; description carries the short description text and
// origin the country of origin.
type AddFoodRequest struct {
	Name        string  `json:"name" validate:"required"`
	Image       string  `json:"image" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
	AddedBy     string  `json:"addedBy" validate:"required"`
	Email       string  `json:"email" validate:"required"`
	Origin      string  `json:"origin" validate:"required"`
	Description string  `json:"description" validate:"required"`
}

// UpdateFoodRequest defines the body for updating a listing. All listed
// fields are overwritten as supplied; ingredients and makingProcedure are
// not part of the update surface.
type UpdateFoodRequest struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description struct {
		ShortDescription string `json:"shortDescription"`
		FoodOrigin       string `json:"foodOrigin"`
	} `json:"description"`
}

// PurchaseBody defines the body for recording a purchase. Quantity is
// deliberately unvalidated beyond its type; it is applied as-is.
type PurchaseBody struct {
	FoodID     string  `json:"foodId" validate:"required"`
	FoodName   string  `json:"foodName" validate:"required"`
	Price      float64 `json:"price" validate:"required"`
	Quantity   int     `json:"quantity"`
	BuyerName  string  `json:"buyerName" validate:"required"`
	BuyerEmail string  `json:"buyerEmail" validate:"required"`
}

// parseListQuery parses the optional category and priceRange query
// parameters. priceRange must be "MIN-MAX" with two decimal bounds.
func parseListQuery(c *gin.Context) (services.ListFoodsParams, error) {
	params := services.ListFoodsParams{
		Category: strings.TrimSpace(c.Query("category")),
	}

	priceRange := strings.TrimSpace(c.Query("priceRange"))
	if priceRange == "" {
		return params, nil
	}

	parts := strings.SplitN(priceRange, "-", 2)
	if len(parts) != 2 {
		return params, errors.New("invalid priceRange format, expected MIN-MAX")
	}

	minPrice, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return params, errors.New("invalid priceRange minimum")
	}
	maxPrice, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return params, errors.New("invalid priceRange maximum")
	}

	params.MinPrice = &minPrice
	params.MaxPrice = &maxPrice
	return params, nil
}
