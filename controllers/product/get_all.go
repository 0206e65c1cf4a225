package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nelsonbong/Tien-Hiong-Backend/models"
)

const (
	newCollectionSize   = 8
	popularCategory     = "tea"
	popularCategorySize = 4
)

// GET /allproducts
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /newcollections
//
// Last 8 records in whatever order the store returns them. The storefront
// treats this as "newest arrivals"; no ORDER BY is applied.
func NewCollections(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if len(products) > newCollectionSize {
			products = products[len(products)-newCollectionSize:]
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /popularproducts
//
// The homepage "popular in tea" strip: first 4 tea products in store order.
func PopularProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("category = ?", popularCategory).Limit(popularCategorySize).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
