package admin

import (
	"net/http"
	"time"

	"property-app/database"
	"property-app/internal/domain/billing"
	"property-app/internal/domain/companies"
	"property-app/internal/domain/entitlements"
	"property-app/internal/domain/properties"
	"property-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminCompany struct {
	ID                 uint       `json:"id"`
	Name               string     `json:"name"`
	AssignedPlanID     string     `json:"assigned_plan_id"`
	OverridePlanID     *string    `json:"override_plan_id,omitempty"`
	OverrideReason     *string    `json:"override_reason,omitempty"`
	EffectivePlanID    string     `json:"effective_plan_id"`
	SubscriptionStatus string     `json:"subscription_status"`
	IsPartner          bool       `json:"is_partner"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type AdminUser struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	CompanyID  *uint  `json:"company_id,omitempty"`
}

// GET /admin/dashboard
func AdminDashboard(c *gin.Context) {
	var companyCount, userCount, propertyCount, paymentCount int64

	if err := database.DB.Model(&companies.Company{}).Count(&companyCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	database.DB.Model(&users.User{}).Count(&userCount)
	database.DB.Model(&properties.Property{}).Count(&propertyCount)
	database.DB.Model(&billing.Payment{}).Count(&paymentCount)

	var activeCount int64
	database.DB.Model(&companies.Company{}).
		Where("subscription_status IN ?", []string{companies.StatusActive, companies.StatusTrialing}).
		Count(&activeCount)

	c.JSON(http.StatusOK, gin.H{
		"companies":            companyCount,
		"active_subscriptions": activeCount,
		"users":                userCount,
		"properties":           propertyCount,
		"payments":             paymentCount,
	})
}

// GET /admin/companies
func ListAllCompanies(c *gin.Context) {
	var list []companies.Company
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load companies"})
		return
	}

	out := make([]AdminCompany, 0, len(list))
	for _, co := range list {
		eff := entitlements.Resolve(co)
		out = append(out, AdminCompany{
			ID:                 co.ID,
			Name:               co.Name,
			AssignedPlanID:     co.AssignedPlanID,
			OverridePlanID:     co.OverridePlanID,
			OverrideReason:     co.OverrideReason,
			EffectivePlanID:    eff.Plan.ID,
			SubscriptionStatus: co.SubscriptionStatus,
			IsPartner:          co.IsPartner,
			CurrentPeriodEnd:   co.CurrentPeriodEnd,
			CreatedAt:          co.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /admin/users
func ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]AdminUser, 0, len(list))
	for _, u := range list {
		out = append(out, AdminUser{
			ID:         u.ID,
			Name:       u.Name,
			Lastname:   u.Lastname,
			Email:      u.Email,
			Role:       u.Role,
			IsVerified: u.IsVerified,
			CompanyID:  u.CompanyID,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /admin/payments
func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	if err := database.DB.Preload("Company").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /admin/companies/:id
func GetCompanyDetails(c *gin.Context) {
	var company companies.Company
	if err := database.DB.Where("id = ?", c.Param("id")).First(&company).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	eff := entitlements.Resolve(company)

	var members []users.User
	database.DB.Where("company_id = ?", company.ID).Find(&members)

	c.JSON(http.StatusOK, gin.H{
		"company":           company,
		"effective_plan_id": eff.Plan.ID,
		"is_overridden":     eff.IsOverridden,
		"members":           len(members),
	})
}
