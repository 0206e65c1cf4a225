package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartcontroller "github.com/nelsonbong/Tien-Hiong-Backend/controllers/cart"
	"github.com/nelsonbong/Tien-Hiong-Backend/middleware"
)

// SetupCartRoutes registers the token-protected cart endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/addtocart", middleware.ValidateToken, cartcontroller.AddToCart(db))
	r.POST("/removefromcart", middleware.ValidateToken, cartcontroller.RemoveFromCart(db))
	r.POST("/getcart", middleware.ValidateToken, cartcontroller.GetCart(db))
}
