package cartcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nelsonbong/Tien-Hiong-Backend/models"
)

// Two requests racing on the same cart lose the version check and retry on a
// fresh read, so increments are never silently dropped.
const maxCartRetries = 3

type CartItemInput struct {
	ItemID *int `json:"itemId" binding:"required"`
}

// POST /addtocart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return cartMutation(db, "Added to cart", func(cart models.CartData, itemID int) bool {
		cart[itemID]++
		return true
	})
}

// POST /removefromcart
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return cartMutation(db, "Removed from cart", func(cart models.CartData, itemID int) bool {
		if cart[itemID] <= 0 {
			// Already empty, nothing to write
			return false
		}
		cart[itemID]--
		return true
	})
}

// POST /getcart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, user.CartData)
	}
}

// cartMutation applies mutate to one slot under an optimistic version check.
// mutate reports whether the cart actually changed; a false return skips the
// write but still answers success.
func cartMutation(db *gorm.DB, message string, mutate func(models.CartData, int) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Invalid input: " + err.Error()})
			return
		}
		itemID := *input.ItemID
		if itemID < 0 || itemID >= models.CartSlots {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Invalid item id"})
			return
		}

		for attempt := 0; attempt < maxCartRetries; attempt++ {
			var user models.User
			if err := db.First(&user, "id = ?", userID).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user cart"})
				return
			}

			cart := user.CartData
			if cart == nil {
				cart = models.NewCartData()
			}
			if !mutate(cart, itemID) {
				c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
				return
			}

			res := db.Model(&models.User{}).
				Where("id = ? AND cart_version = ?", user.ID, user.CartVersion).
				Updates(map[string]interface{}{
					"cart_data":    cart,
					"cart_version": user.CartVersion + 1,
				})
			if res.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
			if res.RowsAffected == 1 {
				c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
				return
			}
			// Version moved under us, reload and try again
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart update conflict, please retry"})
	}
}
