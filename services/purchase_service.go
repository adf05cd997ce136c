package services

import (
	"context"
	"errors"
	"time"

	"food-service/models"
	"food-service/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrFoodNotFound is returned when a purchase references a food id that
	// matches no document. The purchase record itself has already been
	// inserted by then; see PurchaseFood.
	ErrFoodNotFound = errors.New("food not found")

	// ErrPurchaseNotFound is returned when deleting a purchase that does not exist.
	ErrPurchaseNotFound = errors.New("purchase not found")
)

// PurchaseRequest carries the fields of a purchase order.
type PurchaseRequest struct {
	FoodID     primitive.ObjectID
	FoodName   string
	Price      float64
	Quantity   int
	BuyerName  string
	BuyerEmail string
}

// PurchaseServiceAPI is the surface consumed by the purchase controller.
type PurchaseServiceAPI interface {
	PurchaseFood(ctx context.Context, req PurchaseRequest) (*models.Purchase, error)
	PurchasesByBuyer(ctx context.Context, email string) ([]models.Purchase, error)
	DeletePurchase(ctx context.Context, id primitive.ObjectID) error
}

type PurchaseService struct {
	purchases repository.PurchaseRepo
	foods     repository.FoodRepo
}

func NewPurchaseService(purchases repository.PurchaseRepo, foods repository.FoodRepo) *PurchaseService {
	return &PurchaseService{purchases: purchases, foods: foods}
}

// PurchaseFood records a purchase in two independent writes: it inserts the
// purchase document, then applies the stock decrement and order snapshot to
// the food document. The two writes are not wrapped in a transaction; when
// the food id matches nothing the inserted purchase stays behind and the
// caller gets ErrFoodNotFound. Stock is never checked against the purchased
// quantity, so quantity can go negative.
func (s *PurchaseService) PurchaseFood(ctx context.Context, req PurchaseRequest) (*models.Purchase, error) {
	purchase := &models.Purchase{
		ID:         primitive.NewObjectID(),
		FoodID:     req.FoodID,
		FoodName:   req.FoodName,
		Price:      req.Price,
		Quantity:   req.Quantity,
		BuyerName:  req.BuyerName,
		BuyerEmail: req.BuyerEmail,
		BuyingDate: time.Now().UTC(),
	}

	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}

	matched, err := s.foods.ApplyPurchase(ctx, req.FoodID, purchase)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrFoodNotFound
	}

	return purchase, nil
}

func (s *PurchaseService) PurchasesByBuyer(ctx context.Context, email string) ([]models.Purchase, error) {
	return s.purchases.FindByBuyer(ctx, email)
}

// DeletePurchase removes the purchase document only. The snapshot embedded
// in the food's orders array is left as is; nothing keeps the two copies in
// sync.
func (s *PurchaseService) DeletePurchase(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.purchases.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrPurchaseNotFound
	}
	return nil
}
