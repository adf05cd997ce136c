package controllers

import (
	"net/http"

	"food-service/middleware"
	"food-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type PurchaseController struct {
	service services.PurchaseServiceAPI
	cache   *CacheManager
}

func NewPurchaseController(service services.PurchaseServiceAPI, redisClient *redis.Client) *PurchaseController {
	return &PurchaseController{
		service: service,
		cache:   NewCacheManager(redisClient),
	}
}

// PurchaseFood records a purchase. The purchase document is inserted before
// the food document is touched; when the food id matches nothing the caller
// gets a 404 but the purchase record has already been committed.
func (pc *PurchaseController) PurchaseFood(c *gin.Context) {
	var body PurchaseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validate.Struct(&body); err != nil {
		zap.L().Warn("Purchase validation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	foodID, err := primitive.ObjectIDFromHex(body.FoodID)
	if err != nil {
		zap.L().Warn("Invalid food id format", zap.String("foodId", body.FoodID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	_, err = pc.service.PurchaseFood(c.Request.Context(), services.PurchaseRequest{
		FoodID:     foodID,
		FoodName:   body.FoodName,
		Price:      body.Price,
		Quantity:   body.Quantity,
		BuyerName:  body.BuyerName,
		BuyerEmail: body.BuyerEmail,
	})
	if err != nil {
		if err == services.ErrFoodNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		} else {
			zap.L().Error("Error processing purchase", zap.Error(err), zap.String("foodId", body.FoodID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process purchase"})
		}
		return
	}

	pc.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{"message": "Purchase successful"})
}

// GetMyOrders lists the purchases made by the authenticated caller.
func (pc *PurchaseController) GetMyOrders(c *gin.Context) {
	email, err := middleware.GetUserEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	purchases, err := pc.service.PurchasesByBuyer(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("Error fetching user orders", zap.Error(err), zap.String("email", email))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}

	c.JSON(http.StatusOK, purchases)
}

// DeleteMyOrder removes a purchase record by id. The snapshot embedded in
// the food's orders array is not touched.
func (pc *PurchaseController) DeleteMyOrder(c *gin.Context) {
	if _, err := middleware.GetUserEmail(c); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("id")
	purchaseID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		zap.L().Warn("Invalid purchase id format", zap.String("id", id))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	if err := pc.service.DeletePurchase(c.Request.Context(), purchaseID); err != nil {
		if err == services.ErrPurchaseNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			zap.L().Error("Error deleting order", zap.Error(err), zap.String("id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
