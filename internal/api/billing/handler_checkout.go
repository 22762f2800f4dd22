package billing

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"property-app/config"
	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/companies"
	"property-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	portalSession "github.com/stripe/stripe-go/v75/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	customer "github.com/stripe/stripe-go/v75/customer"
)

// priceIDFor maps a catalog plan id to its configured Stripe price id,
// e.g. agent_pro -> STRIPE_PRICE_AGENT_PRO. The catalog itself is
// compiled-in; only the vendor price ids live in the environment.
func priceIDFor(planID string) string {
	return os.Getenv("STRIPE_PRICE_" + strings.ToUpper(planID))
}

// POST /create-checkout-session
func CreateCheckoutSession(c *gin.Context) {
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

	// allow-list: only catalog plans are purchasable
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
	email := c.GetString("email")

	// ensure stripe customer
	if co.StripeCustomerID == nil || *co.StripeCustomerID == "" {
		cus, err := customer.New(&stripe.CustomerParams{
			Email: stripe.String(email),
			Name:  stripe.String(co.Name),
			Metadata: map[string]string{
				"company_id": fmt.Sprint(co.ID),
				"app_env":    os.Getenv("APP_ENV"),
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Stripe customer"})
			return
		}

		if err := database.DB.Model(&companies.Company{}).
			Where("id = ?", co.ID).
			Update("stripe_customer_id", cus.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store Stripe customer"})
			return
		}

		co.StripeCustomerID = stripe.String(cus.ID)
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(config.APP_URL + "/account"),
		CancelURL:  stripe.String(config.APP_URL + "/account?canceled=1"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:   stripe.String(*co.StripeCustomerID),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},

		ClientReferenceID: stripe.String(fmt.Sprint(co.ID)),

		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"company_id": fmt.Sprint(co.ID),
				"plan_id":    plan.ID,
			},
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

// POST /billing-portal
func CreateBillingPortal(c *gin.Context) {
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

	if co.StripeCustomerID == nil || *co.StripeCustomerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No billing account yet"})
		return
	}

	s, err := portalSession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*co.StripeCustomerID),
		ReturnURL: stripe.String(config.APP_URL + "/account"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create billing portal session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
