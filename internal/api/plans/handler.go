package plans

import (
	"net/http"

	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/entitlements"
	"property-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// GET /plans — the compiled-in catalog, cheapest first.
func ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, plans.All())
}

// GET /usage — the caller's live usage against the effective plan.
func GetUsage(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No company found for this account",
			"code":  entitlements.CodeNoCompany,
		})
		return
	}

	eff := entitlements.Resolve(co)

	type usageRow struct {
		Resource  string `json:"resource"`
		Used      int    `json:"used"`
		Limit     int    `json:"limit"`
		Remaining int    `json:"remaining"`
	}

	out := struct {
		PlanID       string     `json:"plan_id"`
		PlanName     string     `json:"plan_name"`
		IsOverridden bool       `json:"is_overridden"`
		Status       string     `json:"status"`
		Usage        []usageRow `json:"usage"`
	}{
		PlanID:       eff.Plan.ID,
		PlanName:     eff.Plan.Name,
		IsOverridden: eff.IsOverridden,
		Status:       eff.Status,
	}

	for _, resource := range plans.Resources() {
		count, err := entitlements.CountResource(database.DB, co.ID, resource)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load usage"})
			return
		}
		dec := entitlements.CanAddResource(eff, resource, int(count))
		out.Usage = append(out.Usage, usageRow{
			Resource:  resource,
			Used:      int(count),
			Limit:     dec.Limit,
			Remaining: dec.Remaining,
		})
	}

	c.JSON(http.StatusOK, out)
}
