package maintenance

import (
	"net/http"
	"time"

	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/maintenance"
	"property-app/internal/domain/properties"

	"github.com/gin-gonic/gin"
)

// POST /maintenance
func CreateRequest(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var req struct {
		PropertyID  string `json:"property_id" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
		ReportedBy  string `json:"reported_by"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var prop properties.Property
	if err := database.DB.Where("id = ? AND company_id = ?", req.PropertyID, co.ID).First(&prop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	priority := req.Priority
	switch priority {
	case maintenance.PriorityLow, maintenance.PriorityNormal, maintenance.PriorityUrgent:
	case "":
		priority = maintenance.PriorityNormal
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	mr := maintenance.Request{
		CompanyID:   co.ID,
		PropertyID:  prop.ID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      maintenance.StatusOpen,
		ReportedBy:  req.ReportedBy,
	}
	if err := database.DB.Create(&mr).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance request"})
		return
	}

	c.JSON(http.StatusCreated, mr)
}

// GET /maintenance
func ListRequests(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var list []maintenance.Request
	q := database.DB.Where("company_id = ?", co.ID)
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load maintenance requests"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// PUT /maintenance/:id/status
func UpdateStatus(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch body.Status {
	case maintenance.StatusOpen, maintenance.StatusInProgress, maintenance.StatusResolved:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var mr maintenance.Request
	if err := database.DB.Where("id = ? AND company_id = ?", c.Param("id"), co.ID).First(&mr).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance request not found"})
		return
	}

	updates := map[string]interface{}{"status": body.Status}
	if body.Status == maintenance.StatusResolved {
		now := time.Now()
		updates["resolved_at"] = now
	}

	if err := database.DB.Model(&mr).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
