package properties

import (
	"net/http"

	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/properties"

	"github.com/gin-gonic/gin"
)

// POST /properties/:id/documents
// Registers metadata for a file already uploaded to object storage.
func AddDocument(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var prop properties.Property
	if err := database.DB.Where("id = ? AND company_id = ?", c.Param("id"), co.ID).First(&prop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		StoragePath string `json:"storage_path" binding:"required"`
		ContentType string `json:"content_type"`
		SizeBytes   int64  `json:"size_bytes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc := properties.Document{
		CompanyID:   co.ID,
		PropertyID:  prop.ID,
		Name:        req.Name,
		StoragePath: req.StoragePath,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		UploadedBy:  c.GetUint("user_id"),
	}
	if err := database.DB.Create(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// DELETE /properties/:id/documents/:docId
func DeleteDocument(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	res := database.DB.
		Where("id = ? AND property_id = ? AND company_id = ?", c.Param("docId"), c.Param("id"), co.ID).
		Delete(&properties.Document{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
