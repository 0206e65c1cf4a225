package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/nelsonbong/Tien-Hiong-Backend/controllers/product"
	"github.com/nelsonbong/Tien-Hiong-Backend/middleware"
)

// SetupAdminRoutes registers operator-only endpoints behind the API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/exportproducts", middleware.ValidateAPIKey, productcontroller.ExportProductsToExcel(db))
}
