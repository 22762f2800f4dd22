package stripewebhooks

import (
	"fmt"

	"property-app/database"
	"property-app/internal/domain/companies"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

// The assigned plan is kept for history and any admin override stays
// untouched; only the status transitions. Companies are never deleted.
func handleSubscriptionDeleted(c *gin.Context, sub *stripe.Subscription) error {
	var company companies.Company
	if err := database.DB.Where("subscription_id = ?", sub.ID).First(&company).Error; err != nil {
		fmt.Println("⚠️ subscription.deleted for unknown subscription:", sub.ID)
		return nil
	}

	if err := database.DB.Model(&companies.Company{}).
		Where("id = ?", company.ID).
		Update("subscription_status", companies.StatusCancelled).Error; err != nil {
		return fmt.Errorf("failed to mark subscription cancelled: %w", err)
	}

	return nil
}
