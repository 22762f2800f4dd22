package invoices

import (
	"fmt"
	"net/http"
	"time"

	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/invoices"
	"property-app/internal/domain/leases"

	"github.com/gin-gonic/gin"
)

// POST /invoices
func CreateInvoice(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var req struct {
		LeaseID   string    `json:"lease_id" binding:"required"`
		AmountEUR float64   `json:"amount_eur" binding:"required"`
		DueDate   time.Time `json:"due_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var lease leases.Lease
	if err := database.DB.Where("id = ? AND company_id = ?", req.LeaseID, co.ID).First(&lease).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lease not found"})
		return
	}

	var seq int64
	if err := database.DB.Model(&invoices.Invoice{}).
		Where("company_id = ?", co.ID).
		Count(&seq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to number invoice"})
		return
	}

	inv := invoices.Invoice{
		CompanyID: co.ID,
		LeaseID:   lease.ID,
		Number:    fmt.Sprintf("INV-%d-%04d", time.Now().Year(), seq+1),
		AmountEUR: req.AmountEUR,
		DueDate:   req.DueDate,
		Status:    invoices.StatusDraft,
	}
	if err := database.DB.Create(&inv).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, inv)
}

// GET /invoices
func ListInvoices(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var list []invoices.Invoice
	q := database.DB.Where("company_id = ?", co.ID)
	if leaseID := c.Query("lease_id"); leaseID != "" {
		q = q.Where("lease_id = ?", leaseID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("due_date DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoices"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /invoices/:id/send
func SendInvoice(c *gin.Context) {
	transition(c, invoices.StatusDraft, invoices.StatusSent, "Invoice sent")
}

// POST /invoices/:id/mark-paid
func MarkInvoicePaid(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var inv invoices.Invoice
	if err := database.DB.Where("id = ? AND company_id = ?", c.Param("id"), co.ID).First(&inv).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	if inv.Status == invoices.StatusPaid {
		c.JSON(http.StatusConflict, gin.H{"error": "Invoice already paid"})
		return
	}

	now := time.Now()
	if err := database.DB.Model(&inv).Updates(map[string]interface{}{
		"status":  invoices.StatusPaid,
		"paid_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice marked as paid"})
}

func transition(c *gin.Context, from, to, message string) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var inv invoices.Invoice
	if err := database.DB.Where("id = ? AND company_id = ?", c.Param("id"), co.ID).First(&inv).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	if inv.Status != from {
		c.JSON(http.StatusConflict, gin.H{"error": "Invoice is not in status " + from})
		return
	}

	if err := database.DB.Model(&inv).Update("status", to).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
