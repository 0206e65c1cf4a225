package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nelsonbong/Tien-Hiong-Backend/auth"
)

// SetupAccountRoutes registers signup and login.
func SetupAccountRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/signup", auth.Signup(db))
	r.POST("/login", auth.Login(db))
}
