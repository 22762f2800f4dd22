package users

import (
	"net/http"
	"time"

	"property-app/database"
	"property-app/internal/domain/entitlements"
	"property-app/internal/domain/plans"
	"property-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GET /me
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Preload("Company").Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	me := MeDTO{
		ID:         user.ID,
		Name:       user.Name,
		Lastname:   user.Lastname,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		Company:    BuildCompanyDTO(user.Company),
		FullAccess: entitlements.HasFullAccess(user, user.Company),
	}

	if user.Company != nil {
		eff := entitlements.Resolve(*user.Company)
		me.Plan = BuildPlanDTO(eff)
		me.Subscription = BuildSubscriptionDTO(user.Company)
		me.Trial = BuildTrialDTO(time.Now(), user.Company.TrialStartAt, user.Company.TrialEndAt)
		me.Features = BuildFeatureList(eff)

		for _, resource := range plans.Resources() {
			count, err := entitlements.CountResource(database.DB, user.Company.ID, resource)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load usage"})
				return
			}
			me.Usage = append(me.Usage, BuildUsageDTO(eff, resource, int(count)))
		}
	}

	c.JSON(http.StatusOK, me)
}
