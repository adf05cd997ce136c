package services

import (
	"context"
	"time"

	"food-service/models"
	"food-service/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TopFoodsLimit caps the best-seller listing.
const TopFoodsLimit = 6

// ListFoodsParams defines the filters for listing foods. Nil price bounds
// mean no price filtering; both are set when a priceRange was supplied.
type ListFoodsParams struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// FoodCreateRequest carries the validated fields for a new listing.
type FoodCreateRequest struct {
	Name             string
	Image            string
	Category         string
	Quantity         int
	Price            float64
	AddedByName      string
	AddedByEmail     string
	Origin           string
	ShortDescription string
}

// FoodUpdateRequest carries the editable fields of a listing. Ingredients
// and makingProcedure are not editable through updates.
type FoodUpdateRequest struct {
	Name             string
	Image            string
	Category         string
	Quantity         int
	Price            float64
	ShortDescription string
	FoodOrigin       string
}

// FoodServiceAPI is the surface consumed by the food controller.
type FoodServiceAPI interface {
	ListFoods(ctx context.Context, params ListFoodsParams) ([]models.Food, error)
	GetFood(ctx context.Context, id primitive.ObjectID) (*models.Food, error)
	TopFoods(ctx context.Context) ([]models.Food, error)
	FoodsByOwner(ctx context.Context, email string) ([]models.Food, error)
	AddFood(ctx context.Context, req FoodCreateRequest) (*models.Food, error)
	UpdateFood(ctx context.Context, id primitive.ObjectID, req FoodUpdateRequest) (*models.Food, error)
}

type FoodService struct {
	repo repository.FoodRepo
}

func NewFoodService(repo repository.FoodRepo) *FoodService {
	return &FoodService{repo: repo}
}

func (s *FoodService) ListFoods(ctx context.Context, params ListFoodsParams) ([]models.Food, error) {
	filter := bson.M{}
	if params.Category != "" {
		filter["category"] = params.Category
	}
	if params.MinPrice != nil && params.MaxPrice != nil {
		filter["price"] = bson.M{"$gte": *params.MinPrice, "$lte": *params.MaxPrice}
	}

	return s.repo.Find(ctx, filter, options.Find())
}

func (s *FoodService) GetFood(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FoodService) TopFoods(ctx context.Context) ([]models.Food, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "purchaseCount", Value: -1}}).
		SetLimit(TopFoodsLimit)

	return s.repo.Find(ctx, bson.M{}, findOptions)
}

func (s *FoodService) FoodsByOwner(ctx context.Context, email string) ([]models.Food, error) {
	return s.repo.Find(ctx, bson.M{"addedBy.email": email}, options.Find())
}

func (s *FoodService) AddFood(ctx context.Context, req FoodCreateRequest) (*models.Food, error) {
	// The id is generated before the insert so the response always carries it.
	food := &models.Food{
		ID:       primitive.NewObjectID(),
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		Quantity: req.Quantity,
		Price:    req.Price,
		Description: models.Description{
			ShortDescription: req.ShortDescription,
			Ingredients:      []string{},
			MakingProcedure:  "",
			FoodOrigin:       req.Origin,
		},
		AddedBy: models.AddedBy{
			Name:  req.AddedByName,
			Email: req.AddedByEmail,
		},
		PurchaseCount: 0,
		Orders:        []models.Purchase{},
		AddedDate:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) UpdateFood(ctx context.Context, id primitive.ObjectID, req FoodUpdateRequest) (*models.Food, error) {
	// Dotted paths keep description.ingredients and
	// description.makingProcedure out of the overwrite.
	set := bson.M{
		"name":                         req.Name,
		"image":                        req.Image,
		"category":                     req.Category,
		"quantity":                     req.Quantity,
		"price":                        req.Price,
		"description.shortDescription": req.ShortDescription,
		"description.foodOrigin":       req.FoodOrigin,
	}

	return s.repo.UpdateByID(ctx, id, set)
}
