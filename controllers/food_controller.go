package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"food-service/middleware"
	"food-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type FoodController struct {
	service services.FoodServiceAPI
	cache   *CacheManager
}

func NewFoodController(service services.FoodServiceAPI, redisClient *redis.Client) *FoodController {
	return &FoodController{
		service: service,
		cache:   NewCacheManager(redisClient),
	}
}

// GetFoods lists foods, optionally filtered by category and an inclusive
// priceRange of the form MIN-MAX.
func (fc *FoodController) GetFoods(c *gin.Context) {
	params, err := parseListQuery(c)
	if err != nil {
		zap.L().Warn("Invalid food list query", zap.Error(err), zap.String("query", c.Request.URL.RawQuery))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fc.serveList(c, params)
}

// GetAllFoods returns the unfiltered listing; kept as its own route for
// compatibility with the original API surface.
func (fc *FoodController) GetAllFoods(c *gin.Context) {
	fc.serveList(c, services.ListFoodsParams{})
}

func (fc *FoodController) serveList(c *gin.Context, params services.ListFoodsParams) {
	cacheKey := listCacheKey(params)
	if body, ok := fc.cache.GetList(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	foods, err := fc.service.ListFoods(c.Request.Context(), params)
	if err != nil {
		zap.L().Error("Error fetching foods", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve food items"})
		return
	}

	if body, err := json.Marshal(foods); err == nil {
		fc.cache.SetListAsync(cacheKey, body)
	}

	c.JSON(http.StatusOK, foods)
}

// GetFoodByID returns a single food document.
func (fc *FoodController) GetFoodByID(c *gin.Context) {
	id := c.Param("id")
	foodID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		zap.L().Warn("Invalid food id format", zap.String("id", id))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	food, err := fc.service.GetFood(c.Request.Context(), foodID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		} else {
			zap.L().Error("Error fetching food by id", zap.Error(err), zap.String("id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve food item"})
		}
		return
	}

	c.JSON(http.StatusOK, food)
}

// GetTopFoods returns the best sellers ordered by purchaseCount descending.
func (fc *FoodController) GetTopFoods(c *gin.Context) {
	const cacheKey = "top"
	if body, ok := fc.cache.GetList(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	foods, err := fc.service.TopFoods(c.Request.Context())
	if err != nil {
		zap.L().Error("Error fetching top-selling foods", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve top-selling foods"})
		return
	}

	if body, err := json.Marshal(foods); err == nil {
		fc.cache.SetListAsync(cacheKey, body)
	}

	c.JSON(http.StatusOK, foods)
}

// GetMyFoods lists the foods created by the authenticated caller.
func (fc *FoodController) GetMyFoods(c *gin.Context) {
	email, err := middleware.GetUserEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	foods, err := fc.service.FoodsByOwner(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("Error fetching user foods", zap.Error(err), zap.String("email", email))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user foods"})
		return
	}

	c.JSON(http.StatusOK, foods)
}

// UpdateFood overwrites the editable fields of a listing. Any authenticated
// caller may update any item; the caller identity is recorded in the log
// line only.
func (fc *FoodController) UpdateFood(c *gin.Context) {
	email, err := middleware.GetUserEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("id")
	foodID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		zap.L().Warn("Invalid food id format", zap.String("id", id))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	var req UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := fc.service.UpdateFood(c.Request.Context(), foodID, services.FoodUpdateRequest{
		Name:             req.Name,
		Image:            req.Image,
		Category:         req.Category,
		Quantity:         req.Quantity,
		Price:            req.Price,
		ShortDescription: req.Description.ShortDescription,
		FoodOrigin:       req.Description.FoodOrigin,
	})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		} else {
			zap.L().Error("Failed to update food item", zap.Error(err), zap.String("id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update food item"})
		}
		return
	}

	fc.cache.Invalidate(c.Request.Context())

	zap.L().Info("Food item updated",
		zap.String("id", id),
		zap.String("updated_by", email),
	)
	c.JSON(http.StatusOK, updated)
}

// AddFood creates a new listing.
func (fc *FoodController) AddFood(c *gin.Context) {
	var req AddFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validate.Struct(&req); err != nil {
		zap.L().Warn("Add food validation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	food, err := fc.service.AddFood(c.Request.Context(), services.FoodCreateRequest{
		Name:             req.Name,
		Image:            req.Image,
		Category:         req.Category,
		Quantity:         req.Quantity,
		Price:            req.Price,
		AddedByName:      req.AddedBy,
		AddedByEmail:     req.Email,
		Origin:           req.Origin,
		ShortDescription: req.Description,
	})
	if err != nil {
		zap.L().Error("Failed to add food item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food item"})
		return
	}

	fc.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, food)
}

func listCacheKey(params services.ListFoodsParams) string {
	price := ""
	if params.MinPrice != nil && params.MaxPrice != nil {
		price = fmt.Sprintf("%g-%g", *params.MinPrice, *params.MaxPrice)
	}
	return fmt.Sprintf("list:category=%s:price=%s", params.Category, price)
}
