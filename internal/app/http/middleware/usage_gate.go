package middleware

import (
	"net/http"

	"property-app/database"
	"property-app/internal/domain/companies"
	"property-app/internal/domain/entitlements"
	"property-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireCompany for downstream handlers.
const (
	CtxCompany    = "company"
	CtxCompanyID  = "company_id"
	CtxFullAccess = "full_access"
)

// RequireCompany loads the caller's company association and stores it
// in the request context. Billing-state lookup failures are fail-closed:
// a user without a company gets a 400, never a silent allow.
//
// The full-access flag (super_admin role, partner companies) is decided
// here, before any plan logic runs.
func RequireCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
			return
		}

		var user users.User
		if err := database.DB.Preload("Company").Where("id = ?", userID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		if user.CompanyID == nil || user.Company == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "No company found for this account",
				"code":  entitlements.CodeNoCompany,
			})
			return
		}

		c.Set(CtxCompany, *user.Company)
		c.Set(CtxCompanyID, user.Company.ID)
		c.Set(CtxFullAccess, entitlements.HasFullAccess(user, user.Company))
		c.Next()
	}
}

// CompanyFromContext returns the company loaded by RequireCompany.
func CompanyFromContext(c *gin.Context) (companies.Company, bool) {
	v, exists := c.Get(CtxCompany)
	if !exists {
		return companies.Company{}, false
	}
	co, ok := v.(companies.Company)
	return co, ok
}

// RequireFeature denies the request unless the company's effective plan
// grants the feature. Re-evaluated on every request so plan changes and
// override toggles apply immediately.
func RequireFeature(feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		co, ok := CompanyFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "No company found for this account",
				"code":  entitlements.CodeNoCompany,
			})
			return
		}

		outcome := entitlements.GuardFeature(co, c.GetBool(CtxFullAccess), feature)
		if !outcome.Allowed {
			c.AbortWithStatusJSON(outcome.HTTPStatus, gin.H{
				"error":            "This feature is not available on your plan",
				"code":             outcome.Code,
				"feature":          feature,
				"upgrade_required": outcome.UpgradeRequired,
			})
			return
		}
		c.Next()
	}
}

// RequireCapacity denies the request when the company is at the
// effective plan's limit for a countable resource. The count is read
// fresh on every request; this check alone is a soft limit, handlers
// that need hard enforcement re-check inside a locked transaction.
func RequireCapacity(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		co, ok := CompanyFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "No company found for this account",
				"code":  entitlements.CodeNoCompany,
			})
			return
		}

		fullAccess := c.GetBool(CtxFullAccess)

		var count int64
		if !fullAccess {
			var err error
			count, err = entitlements.CountResource(database.DB, co.ID, resource)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check usage"})
				return
			}
		}

		outcome := entitlements.GuardResource(co, fullAccess, resource, int(count))
		if !outcome.Allowed {
			c.AbortWithStatusJSON(outcome.HTTPStatus, gin.H{
				"error":            "Plan limit reached",
				"code":             outcome.Code,
				"current_usage":    outcome.CurrentUsage,
				"limit":            outcome.Limit,
				"upgrade_required": outcome.UpgradeRequired,
			})
			return
		}
		c.Next()
	}
}
