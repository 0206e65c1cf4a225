package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires every endpoint onto the
// engine. No package-global router; callers own the engine they pass in.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Tien Hiong API is running")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"environment": os.Getenv("APP_ENV"),
		})
	})

	SetupCatalogRoutes(r, db)
	SetupAccountRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupAdminRoutes(r, db)
}
