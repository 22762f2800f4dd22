package stripe

import (
	"strings"

	"property-app/internal/domain/companies"
)

// NormalizeStripeStatus maps a raw billing.subscription.status from
// Stripe into the closed set stored on companies. Anything Stripe may
// invent later lands on "none" so the entitlement path never sees an
// out-of-enum value.
func NormalizeStripeStatus(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return companies.StatusNone
	}
	switch strings.TrimSpace(*s) {
	case "active":
		return companies.StatusActive
	case "trialing":
		return companies.StatusTrialing
	case "past_due", "unpaid":
		return companies.StatusPastDue
	case "canceled", "incomplete_expired":
		return companies.StatusCancelled
	default:
		return companies.StatusNone
	}
}
