package billing

import (
	"net/http"
	"os"

	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/companies"
	"property-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/subscription"
)

// POST /change-plan
// Swaps the subscription's price in place with proration. The webhook
// confirms the change; the assigned plan is updated optimistically so
// the next request already gates against the new plan.
func ChangePlan(c *gin.Context) {
	var body struct {
		PlanID string `json:"plan_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid plan_id"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	plan, ok := plans.Lookup(body.PlanID)
	if !ok || plan.ID == plans.DefaultPlanID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown or free plan_id"})
		return
	}

	priceID := priceIDFor(plan.ID)
	if priceID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe price not configured for plan " + plan.ID})
		return
	}

	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	if co.SubscriptionID == nil || *co.SubscriptionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active subscription to change"})
		return
	}

	if co.AssignedPlanID == plan.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already on this plan"})
		return
	}

	sub, err := subscription.Get(*co.SubscriptionID, nil)
	if err != nil || sub.Items == nil || len(sub.Items.Data) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	_, err = subscription.Update(sub.ID, &stripe.SubscriptionParams{
		ProrationBehavior: stripe.String("create_prorations"),
		Items: []*stripe.SubscriptionItemsParams{
			{
				ID:    stripe.String(sub.Items.Data[0].ID),
				Price: stripe.String(priceID),
			},
		},
		Metadata: map[string]string{
			"plan_id": plan.ID,
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change plan", "details": err.Error()})
		return
	}

	if err := database.DB.Model(&companies.Company{}).
		Where("id = ?", co.ID).
		Update("assigned_plan_id", plan.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store plan change"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan changed", "plan_id": plan.ID})
}

// POST /cancel-subscription
// Cancels at period end; access runs until the paid-through date, then
// the deletion webhook transitions the company to cancelled.
func CancelSubscription(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	if co.SubscriptionID == nil || *co.SubscriptionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active subscription to cancel"})
		return
	}

	_, err := subscription.Update(*co.SubscriptionID, &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel subscription", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription will cancel at period end"})
}
