package leases

import (
	"net/http"
	"time"

	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/leases"
	"property-app/internal/domain/properties"

	"github.com/gin-gonic/gin"
)

// POST /leases
func CreateLease(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var req struct {
		PropertyID  string     `json:"property_id" binding:"required"`
		TenantName  string     `json:"tenant_name" binding:"required"`
		TenantEmail string     `json:"tenant_email" binding:"required,email"`
		TenantTel   string     `json:"tenant_tel"`
		RentEUR     float64    `json:"rent_eur" binding:"required"`
		DepositEUR  float64    `json:"deposit_eur"`
		StartDate   time.Time  `json:"start_date" binding:"required"`
		EndDate     *time.Time `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The property must belong to the caller's company.
	var prop properties.Property
	if err := database.DB.Where("id = ? AND company_id = ?", req.PropertyID, co.ID).First(&prop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	lease := leases.Lease{
		CompanyID:   co.ID,
		PropertyID:  prop.ID,
		TenantName:  req.TenantName,
		TenantEmail: req.TenantEmail,
		TenantTel:   req.TenantTel,
		RentEUR:     req.RentEUR,
		DepositEUR:  req.DepositEUR,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      leases.StatusDraft,
	}
	if err := database.DB.Create(&lease).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lease"})
		return
	}

	c.JSON(http.StatusCreated, lease)
}

// GET /leases
func ListLeases(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var list []leases.Lease
	q := database.DB.Where("company_id = ?", co.ID)
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("start_date DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leases"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /leases/:id/activate
func ActivateLease(c *gin.Context) {
	updateLeaseStatus(c, leases.StatusDraft, leases.StatusActive, "Lease activated")
}

// POST /leases/:id/end
func EndLease(c *gin.Context) {
	updateLeaseStatus(c, leases.StatusActive, leases.StatusEnded, "Lease ended")
}

func updateLeaseStatus(c *gin.Context, from, to, message string) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var lease leases.Lease
	if err := database.DB.Where("id = ? AND company_id = ?", c.Param("id"), co.ID).First(&lease).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lease not found"})
		return
	}

	if lease.Status != from {
		c.JSON(http.StatusConflict, gin.H{"error": "Lease is not in status " + from})
		return
	}

	updates := map[string]interface{}{"status": to}
	if to == leases.StatusEnded && lease.EndDate == nil {
		now := time.Now()
		updates["end_date"] = now
	}

	if err := database.DB.Model(&lease).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lease"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
