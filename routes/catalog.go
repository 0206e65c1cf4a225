package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/nelsonbong/Tien-Hiong-Backend/controllers/product"
	uploadcontroller "github.com/nelsonbong/Tien-Hiong-Backend/controllers/upload"
)

// SetupCatalogRoutes registers the product endpoints and the image upload.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/addproduct", productcontroller.AddProduct(db))
	r.POST("/removeproduct", productcontroller.RemoveProduct(db))
	r.GET("/allproducts", productcontroller.GetAllProducts(db))
	r.GET("/newcollections", productcontroller.NewCollections(db))
	r.GET("/popularproducts", productcontroller.PopularProducts(db))

	// Live add/remove feed for the operator dashboard
	r.GET("/ws/catalog", productcontroller.CatalogWebSocketHandler)

	// Local storage is the default; set UPLOAD_PROVIDER=hosted to relay
	// uploads to an external image host instead.
	if os.Getenv("UPLOAD_PROVIDER") == "hosted" {
		r.POST("/upload", uploadcontroller.HandleHostedImageUpload(
			os.Getenv("IMAGE_PROVIDER_URL"),
			os.Getenv("IMAGE_PROVIDER_KEY"),
		))
	} else {
		r.POST("/upload", uploadcontroller.HandleImageUpload(
			UploadDir(),
			os.Getenv("PUBLIC_BASE_URL"),
		))
	}
}

// UploadDir is where the local-storage variant keeps image files.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./upload/images"
}
