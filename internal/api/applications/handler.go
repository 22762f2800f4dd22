package applications

import (
	"net/http"

	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/applications"
	"property-app/internal/domain/properties"

	"github.com/gin-gonic/gin"
)

// POST /applications
func CreateApplication(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var req struct {
		PropertyID       string  `json:"property_id" binding:"required"`
		ApplicantName    string  `json:"applicant_name" binding:"required"`
		ApplicantEmail   string  `json:"applicant_email" binding:"required,email"`
		ApplicantTel     string  `json:"applicant_tel"`
		MonthlyIncomeEUR float64 `json:"monthly_income_eur"`
		Message          string  `json:"message"`
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

	app := applications.Application{
		CompanyID:        co.ID,
		PropertyID:       prop.ID,
		ApplicantName:    req.ApplicantName,
		ApplicantEmail:   req.ApplicantEmail,
		ApplicantTel:     req.ApplicantTel,
		MonthlyIncomeEUR: req.MonthlyIncomeEUR,
		Message:          req.Message,
		Status:           applications.StatusSubmitted,
	}
	if err := database.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}

	c.JSON(http.StatusCreated, app)
}

// GET /applications
func ListApplications(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var list []applications.Application
	q := database.DB.Where("company_id = ?", co.ID)
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load applications"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// PUT /applications/:id/status
func ReviewApplication(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var body struct {
		Status string  `json:"status" binding:"required"`
		Note   *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch body.Status {
	case applications.StatusReviewing, applications.StatusApproved, applications.StatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var app applications.Application
	if err := database.DB.Where("id = ? AND company_id = ?", c.Param("id"), co.ID).First(&app).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	updates := map[string]interface{}{"status": body.Status}
	if body.Note != nil {
		updates["note"] = *body.Note
	}

	if err := database.DB.Model(&app).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application updated"})
}
