package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-service/models"
	"food-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePurchaseService struct {
	purchaseCalled int
	lastRequest    services.PurchaseRequest
	purchaseFn     func(ctx context.Context, req services.PurchaseRequest) (*models.Purchase, error)
	buyerCalled    int
	lastBuyer      string
	buyerFn        func(ctx context.Context, email string) ([]models.Purchase, error)
	deleteCalled   int
	lastDeleted    primitive.ObjectID
	deleteFn       func(ctx context.Context, id primitive.ObjectID) error
}

func (f *fakePurchaseService) PurchaseFood(ctx context.Context, req services.PurchaseRequest) (*models.Purchase, error) {
	f.purchaseCalled++
	f.lastRequest = req
	if f.purchaseFn != nil {
		return f.purchaseFn(ctx, req)
	}
	return &models.Purchase{ID: primitive.NewObjectID()}, nil
}

func (f *fakePurchaseService) PurchasesByBuyer(ctx context.Context, email string) ([]models.Purchase, error) {
	f.buyerCalled++
	f.lastBuyer = email
	if f.buyerFn != nil {
		return f.buyerFn(ctx, email)
	}
	return []models.Purchase{}, nil
}

func (f *fakePurchaseService) DeletePurchase(ctx context.Context, id primitive.ObjectID) error {
	f.deleteCalled++
	f.lastDeleted = id
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func purchaseBody(foodID string) string {
	return `{
		"foodId": "` + foodID + `",
		"foodName": "Pad Thai",
		"price": 8.5,
		"quantity": 3,
		"buyerName": "Alice",
		"buyerEmail": "alice@example.com"
	}`
}

func TestPurchaseFood(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 201", func(t *testing.T) {
		foodID := primitive.NewObjectID()
		fakeService := &fakePurchaseService{}
		controller := NewPurchaseController(fakeService, newTestRedisClient())
		router := gin.New()
		router.POST("/purchase", controller.PurchaseFood)

		req := httptest.NewRequest(http.MethodPost, "/purchase", bytes.NewBufferString(purchaseBody(foodID.Hex())))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, 1, fakeService.purchaseCalled)
		assert.Equal(t, foodID, fakeService.lastRequest.FoodID)
		assert.Equal(t, 3, fakeService.lastRequest.Quantity)
		assert.Equal(t, 8.5, fakeService.lastRequest.Price)
		assert.Equal(t, "alice@example.com", fakeService.lastRequest.BuyerEmail)
	})

	t.Run("missing field returns 400 without reaching the service", func(t *testing.T) {
		fakeService := &fakePurchaseService{}
		controller := NewPurchaseController(fakeService, newTestRedisClient())
		router := gin.New()
		router.POST("/purchase", controller.PurchaseFood)

		req := httptest.NewRequest(http.MethodPost, "/purchase", bytes.NewBufferString(`{"foodName": "Pad Thai"}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, 0, fakeService.purchaseCalled)
	})

	t.Run("malformed food id returns 400", func(t *testing.T) {
		fakeService := &fakePurchaseService{}
		controller := NewPurchaseController(fakeService, newTestRedisClient())
		router := gin.New()
		router.POST("/purchase", controller.PurchaseFood)

		req := httptest.NewRequest(http.MethodPost, "/purchase", bytes.NewBufferString(purchaseBody("not-hex")))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, 0, fakeService.purchaseCalled)
	})

	t.Run("unknown food returns 404 after the service ran", func(t *testing.T) {
		fakeService := &fakePurchaseService{
			purchaseFn: func(ctx context.Context, req services.PurchaseRequest) (*models.Purchase, error) {
				return nil, services.ErrFoodNotFound
			},
		}
		controller := NewPurchaseController(fakeService, newTestRedisClient())
		router := gin.New()
		router.POST("/purchase", controller.PurchaseFood)

		req := httptest.NewRequest(http.MethodPost, "/purchase", bytes.NewBufferString(purchaseBody(primitive.NewObjectID().Hex())))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, 1, fakeService.purchaseCalled)
	})
}

func TestGetMyOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity returns 401", func(t *testing.T) {
		fakeService := &fakePurchaseService{}
		controller := NewPurchaseController(fakeService, newTestRedisClient())
		router := gin.New()
		router.GET("/my-orders", controller.GetMyOrders)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/my-orders", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, 0, fakeService.buyerCalled)
	})

	t.Run("lists purchases for caller email", func(t *testing.T) {
		fakeService := &fakePurchaseService{
			buyerFn: func(ctx context.Context, email string) ([]models.Purchase, error) {
				return []models.Purchase{{ID: primitive.NewObjectID(), FoodName: "Pad Thai", BuyerEmail: email}}, nil
			},
		}
		controller := NewPurchaseController(fakeService, newTestRedisClient())
		router := gin.New()
		router.GET("/my-orders", setEmail("alice@example.com"), controller.GetMyOrders)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/my-orders", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "alice@example.com", fakeService.lastBuyer)
		assert.Contains(t, recorder.Body.String(), "Pad Thai")
	})
}

func TestDeleteMyOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed id returns 400", func(t *testing.T) {
		fakeService := &fakePurchaseService{}
		controller := NewPurchaseController(fakeService, newTestRedisClient())
		router := gin.New()
		router.DELETE("/my-orders/:id", setEmail("alice@example.com"), controller.DeleteMyOrder)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/my-orders/bogus", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, 0, fakeService.deleteCalled)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		fakeService := &fakePurchaseService{
			deleteFn: func(ctx context.Context, id primitive.ObjectID) error {
				return services.ErrPurchaseNotFound
			},
		}
		controller := NewPurchaseController(fakeService, newTestRedisClient())
		router := gin.New()
		router.DELETE("/my-orders/:id", setEmail("alice@example.com"), controller.DeleteMyOrder)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/my-orders/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("deletes by id", func(t *testing.T) {
		purchaseID := primitive.NewObjectID()
		fakeService := &fakePurchaseService{}
		controller := NewPurchaseController(fakeService, newTestRedisClient())
		router := gin.New()
		router.DELETE("/my-orders/:id", setEmail("alice@example.com"), controller.DeleteMyOrder)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/my-orders/"+purchaseID.Hex(), nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 1, fakeService.deleteCalled)
		assert.Equal(t, purchaseID, fakeService.lastDeleted)
	})
}
