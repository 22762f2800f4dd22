package admin

import (
	"net/http"
	"time"

	"property-app/database"
	"property-app/internal/domain/companies"
	"property-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// POST /admin/companies/:id/override
// Assigns a plan override that supersedes the billing-derived plan on
// the very next request, regardless of subscription status. The reason
// and actor are recorded for audit.
func SetPlanOverride(c *gin.Context) {
	var body struct {
		PlanID string `json:"plan_id" binding:"required"`
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := plans.Lookup(body.PlanID); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan_id"})
		return
	}

	var company companies.Company
	if err := database.DB.Where("id = ?", c.Param("id")).First(&company).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	adminID := c.GetUint("user_id")
	now := time.Now()

	if err := database.DB.Model(&companies.Company{}).
		Where("id = ?", company.ID).
		Updates(map[string]interface{}{
			"override_plan_id": body.PlanID,
			"override_reason":  body.Reason,
			"override_by":      adminID,
			"override_at":      now,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set override"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Override set",
		"company_id":       company.ID,
		"override_plan_id": body.PlanID,
	})
}

// DELETE /admin/companies/:id/override
// Clears the override; the company falls back to its assigned plan.
func ClearPlanOverride(c *gin.Context) {
	var company companies.Company
	if err := database.DB.Where("id = ?", c.Param("id")).First(&company).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	if err := database.DB.Model(&companies.Company{}).
		Where("id = ?", company.ID).
		Updates(map[string]interface{}{
			"override_plan_id": nil,
			"override_reason":  nil,
			"override_by":      nil,
			"override_at":      nil,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear override"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Override cleared", "company_id": company.ID})
}

// POST /admin/companies/:id/partner
// Toggles the partner flag (full access without plan logic).
func SetPartnerFlag(c *gin.Context) {
	var body struct {
		IsPartner *bool `json:"is_partner" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var company companies.Company
	if err := database.DB.Where("id = ?", c.Param("id")).First(&company).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	if err := database.DB.Model(&companies.Company{}).
		Where("id = ?", company.ID).
		Update("is_partner", *body.IsPartner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner flag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner flag updated", "is_partner": *body.IsPartner})
}
