package properties

import (
	"errors"
	"net/http"

	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/companies"
	"property-app/internal/domain/entitlements"
	"property-app/internal/domain/plans"
	"property-app/internal/domain/properties"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreatePropertyRequest struct {
	Name       string  `json:"name" binding:"required"`
	Address    string  `json:"address" binding:"required"`
	City       string  `json:"city"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	Type       string  `json:"type"`
	Bedrooms   int     `json:"bedrooms"`
	SizeSQM    float64 `json:"size_sqm"`
	RentEUR    float64 `json:"rent_eur"`
}

// POST /properties
//
// The route-level gate already checked capacity, but two concurrent
// creates can both pass that read. The limit is re-checked here inside
// a transaction holding a row lock on the company, so creates for one
// tenant serialize and the cap cannot be overshot.
func CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account", "code": entitlements.CodeNoCompany})
		return
	}
	fullAccess := c.GetBool(middleware.CtxFullAccess)

	var denied entitlements.Decision
	var deniedCount int

	prop := properties.Property{
		CompanyID:  co.ID,
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Type:       req.Type,
		Bedrooms:   req.Bedrooms,
		SizeSQM:    req.SizeSQM,
		RentEUR:    req.RentEUR,
		Status:     properties.StatusVacant,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if !fullAccess {
			var locked companies.Company
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&locked, co.ID).Error; err != nil {
				return err
			}

			var count int64
			if err := tx.Model(&properties.Property{}).
				Where("company_id = ?", co.ID).
				Count(&count).Error; err != nil {
				return err
			}

			dec := entitlements.CanAddResource(entitlements.Resolve(locked), plans.ResourceProperties, int(count))
			if !dec.Allowed {
				denied = dec
				deniedCount = int(count)
				return entitlements.ErrLimitReached
			}
		}

		return tx.Create(&prop).Error
	})

	if errors.Is(err, entitlements.ErrLimitReached) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":            "Plan limit reached",
			"code":             entitlements.CodeLimitReached,
			"current_usage":    deniedCount,
			"limit":            denied.Limit,
			"upgrade_required": true,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, prop)
}

// GET /properties
func ListProperties(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var list []properties.Property
	q := database.DB.Where("company_id = ?", co.ID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load properties"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /properties/:id
func GetProperty(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var prop properties.Property
	if err := database.DB.Preload("Documents").
		Where("id = ? AND company_id = ?", c.Param("id"), co.ID).
		First(&prop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, prop)
}

// PUT /properties/:id
func UpdateProperty(c *gin.Context) {
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
		Name       *string  `json:"name"`
		Address    *string  `json:"address"`
		City       *string  `json:"city"`
		PostalCode *string  `json:"postal_code"`
		Country    *string  `json:"country"`
		Type       *string  `json:"type"`
		Bedrooms   *int     `json:"bedrooms"`
		SizeSQM    *float64 `json:"size_sqm"`
		RentEUR    *float64 `json:"rent_eur"`
		Status     *string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Bedrooms != nil {
		updates["bedrooms"] = *req.Bedrooms
	}
	if req.SizeSQM != nil {
		updates["size_sqm"] = *req.SizeSQM
	}
	if req.RentEUR != nil {
		updates["rent_eur"] = *req.RentEUR
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&prop).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
			return
		}
	}

	c.JSON(http.StatusOK, prop)
}

// DELETE /properties/:id
func DeleteProperty(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	res := database.DB.Where("id = ? AND company_id = ?", c.Param("id"), co.ID).
		Delete(&properties.Property{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}
