package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nelsonbong/Tien-Hiong-Backend/models"
)

type RemoveProductInput struct {
	ID int `json:"id"`
}

// RemoveProduct deletes by id. Removing an id that never existed still
// succeeds, so the admin panel can retry deletes without special-casing.
func RemoveProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RemoveProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		found := db.First(&product, "id = ?", input.ID).Error == nil

		if err := db.Delete(&models.Product{}, "id = ?", input.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		if found {
			broadcastCatalogEvent("removed", product)
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"name":    product.Name,
		})
	}
}
