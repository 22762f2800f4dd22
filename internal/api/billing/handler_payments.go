package billing

import (
	"net/http"

	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// GET /payments
func GetPaymentHistory(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.Where("company_id = ?", co.ID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
