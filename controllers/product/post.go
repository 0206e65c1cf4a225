package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nelsonbong/Tien-Hiong-Backend/models"
)

type AddProductInput struct {
	Name     string  `json:"name" binding:"required"`
	Image    string  `json:"image" binding:"required"`
	Category string  `json:"category" binding:"required"`
	NewPrice float64 `json:"new_price"`
	OldPrice float64 `json:"old_price"`
}

// AddProduct creates a catalog entry. The image URL comes from a prior
// /upload call; the id is assigned by the store's own sequence.
func AddProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:      input.Name,
			Image:     input.Image,
			Category:  input.Category,
			NewPrice:  input.NewPrice,
			OldPrice:  input.OldPrice,
			Date:      time.Now(),
			Available: true,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		broadcastCatalogEvent("added", product)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"name":    product.Name,
		})
	}
}
