package uploadcontroller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// FileField is the multipart field name the admin panel uploads under.
const FileField = "product"

// HandleImageUpload saves the uploaded image into uploadDir and returns its
// public URL. Filenames are product_<timestamp><ext> so repeated uploads of
// the same file never collide.
func HandleImageUpload(uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile(FileField)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": 0, "error": "No file uploaded"})
			return
		}

		filename := fmt.Sprintf("%s_%d%s", FileField, time.Now().UnixNano(), filepath.Ext(file.Filename))

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload folder: %v", err)})
			return
		}

		savePath := filepath.Join(uploadDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save file: %v", err)})
			return
		}

		imageURL := fmt.Sprintf("%s/images/%s", publicBaseURL, filename)
		log.Printf("Image uploaded: %s -> %s", file.Filename, imageURL)

		c.JSON(http.StatusOK, gin.H{"success": 1, "image_url": imageURL})
	}
}

// HandleHostedImageUpload relays the uploaded image to an external hosting
// provider and returns whatever URL the provider assigned.
func HandleHostedImageUpload(providerURL, providerKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile(FileField)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": 0, "error": "No file uploaded"})
			return
		}

		imageURL, err := pushToProvider(providerURL, providerKey, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Image provider upload failed: %v", err)})
			return
		}

		log.Printf("Image hosted: %s -> %s", file.Filename, imageURL)

		c.JSON(http.StatusOK, gin.H{"success": 1, "image_url": imageURL})
	}
}

func pushToProvider(providerURL, providerKey string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		part, err := writer.CreateFormFile("image", file.Filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequest(http.MethodPost, providerURL, pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+providerKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", fmt.Errorf("provider response missing url")
	}
	return out.URL, nil
}
