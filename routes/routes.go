package routes

import (
	"net/http"

	"food-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full API surface. authMiddleware guards the
// routes that need an authenticated caller identity.
func RegisterRoutes(r *gin.Engine, fc *controllers.FoodController, pc *controllers.PurchaseController, authMiddleware gin.HandlerFunc) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the API")
	})

	r.GET("/foods", fc.GetFoods)
	r.GET("/all-foods", fc.GetAllFoods)
	r.GET("/foods/:id", fc.GetFoodByID)
	r.GET("/top-foods", fc.GetTopFoods)
	r.POST("/add-food", fc.AddFood)

	r.POST("/purchase", pc.PurchaseFood)
	r.POST("/foods/:id/purchase", pc.PurchaseFood)

	authed := r.Group("/")
	authed.Use(authMiddleware)
	{
		authed.GET("/my-foods", fc.GetMyFoods)
		authed.PUT("/update-food/:id", fc.UpdateFood)
		authed.GET("/my-orders", pc.GetMyOrders)
		authed.DELETE("/my-orders/:id", pc.DeleteMyOrder)
	}
}
