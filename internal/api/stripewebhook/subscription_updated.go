package stripewebhooks

import (
	"fmt"
	"time"

	"property-app/database"
	"property-app/internal/domain/companies"
	infstripe "property-app/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

func handleSubscriptionUpdated(c *gin.Context, sub *stripe.Subscription) error {
	var company companies.Company
	if err := database.DB.Where("subscription_id = ?", sub.ID).First(&company).Error; err != nil {
		// A subscription we never completed checkout for; nothing to sync.
		fmt.Println("⚠️ subscription.updated for unknown subscription:", sub.ID)
		return nil
	}

	rawStatus := string(sub.Status)
	status := infstripe.NormalizeStripeStatus(&rawStatus)
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)

	updates := map[string]interface{}{
		"subscription_status": status,
		"current_period_end":  periodEnd,
	}

	// Plan swaps (upgrade/downgrade) carry the new plan in metadata.
	if planID, err := planIDFromSubscription(sub); err == nil {
		updates["assigned_plan_id"] = planID
	}

	if err := database.DB.Model(&companies.Company{}).
		Where("id = ?", company.ID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to sync subscription update: %w", err)
	}

	return nil
}
