package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"property-app/database"
	"property-app/internal/domain/billing"
	"property-app/internal/domain/companies"
	"property-app/internal/domain/plans"
	infstripe "property-app/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/subscription"
)

func handleCheckoutSessionCompleted(c *gin.Context, session *stripe.CheckoutSession) error {
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if fullSession.Subscription == nil || fullSession.Subscription.ID == "" {
		return errors.New("checkout session missing subscription")
	}
	subscriptionID := fullSession.Subscription.ID

	subData, err := subscription.Get(subscriptionID, nil)
	if err != nil || subData == nil {
		return fmt.Errorf("failed to fetch subscription: %w", err)
	}

	companyID, err := companyIDFromSubscriptionOrRef(subData, fullSession.ClientReferenceID)
	if err != nil {
		return err
	}

	var company companies.Company
	if err := database.DB.Where("id = ?", companyID).First(&company).Error; err != nil {
		return fmt.Errorf("company not found: %w", err)
	}

	planID, err := planIDFromSubscription(subData)
	if err != nil {
		return err
	}

	now := time.Now()
	periodEnd := time.Unix(subData.CurrentPeriodEnd, 0)
	rawStatus := string(subData.Status)
	status := infstripe.NormalizeStripeStatus(&rawStatus)

	updates := map[string]interface{}{
		"assigned_plan_id":    planID,
		"subscription_id":     subscriptionID,
		"subscription_status": status,
		"current_period_end":  periodEnd,
		"trial_start_at":      nil,
		"trial_end_at":        nil,
	}

	if fullSession.Customer != nil && fullSession.Customer.ID != "" {
		updates["stripe_customer_id"] = fullSession.Customer.ID
	}

	// Cancel an old sub if the company somehow had a different one.
	if company.SubscriptionID != nil && *company.SubscriptionID != "" && *company.SubscriptionID != subscriptionID {
		_, _ = subscription.Cancel(*company.SubscriptionID, nil)
	}

	if err := database.DB.Model(&companies.Company{}).
		Where("id = ?", company.ID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update company after checkout: %w", err)
	}

	payment := billing.Payment{
		CompanyID:            company.ID,
		PlanID:               planID,
		StripeSessionID:      fullSession.ID,
		StripeSubscriptionID: &subscriptionID,
		AmountEUR:            float64(fullSession.AmountTotal) / 100.0,
		Status:               string(fullSession.PaymentStatus),
		CreatedAt:            now,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		// The subscription is already applied; a duplicate webhook
		// delivery hitting the unique session id lands here.
		fmt.Println("⚠️ failed to record payment:", err)
	}

	return nil
}

func companyIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) (uint, error) {
	idStr := ""
	if sub.Metadata != nil {
		idStr = sub.Metadata["company_id"]
	}
	if idStr == "" {
		idStr = clientRef
	}
	if idStr == "" {
		return 0, errors.New("missing company_id (metadata.company_id or client_reference_id)")
	}

	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid company_id %q: %w", idStr, err)
	}
	return uint(id64), nil
}

// planIDFromSubscription resolves the catalog plan: metadata.plan_id is
// authoritative (set at checkout and on plan change), with the price's
// plan metadata as fallback. An unresolvable plan is an error here —
// unlike the read path, we refuse to guess on writes.
func planIDFromSubscription(sub *stripe.Subscription) (string, error) {
	if sub.Metadata != nil {
		if id := sub.Metadata["plan_id"]; id != "" {
			if _, ok := plans.Lookup(id); ok {
				return id, nil
			}
			return "", fmt.Errorf("subscription metadata has unknown plan_id %q", id)
		}
	}

	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		price := sub.Items.Data[0].Price
		if price.Metadata != nil {
			if id := price.Metadata["plan"]; id != "" {
				if _, ok := plans.Lookup(id); ok {
					return id, nil
				}
			}
		}
	}

	return "", errors.New("could not resolve plan from subscription")
}
