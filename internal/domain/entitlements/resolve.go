package entitlements

import (
	"log"

	"property-app/internal/domain/companies"
	"property-app/internal/domain/plans"
	"property-app/internal/domain/users"
)

// Effective is the plan actually enforced for a company after applying
// override precedence. IsOverridden and Status are carried for display
// and audit only; they do not affect limit or feature computation.
type Effective struct {
	Plan         plans.Definition
	IsOverridden bool
	Status       string
}

// Resolve computes the effective plan for a company.
//
// An admin override, when set, wins over the assigned plan regardless
// of subscription status, even "cancelled" (comped enterprise access).
// An unknown plan id in either branch silently degrades to the default
// lowest-tier plan: entitlement checks must never fail a request
// because of bad or missing billing state.
func Resolve(co companies.Company) Effective {
	planID := co.AssignedPlanID
	overridden := false

	if co.OverridePlanID != nil && *co.OverridePlanID != "" {
		planID = *co.OverridePlanID
		overridden = true
	}

	def, ok := plans.Lookup(planID)
	if !ok {
		log.Printf("⚠️ unknown plan %q for company %d, falling back to %s", planID, co.ID, plans.DefaultPlanID)
		def = plans.Default()
	}

	return Effective{
		Plan:         def,
		IsOverridden: overridden,
		Status:       co.SubscriptionStatus,
	}
}

// HasFullAccess reports whether the caller bypasses plan logic
// entirely. This is an identity check, not a plan attribute, and must
// run before Resolve.
func HasFullAccess(u users.User, co *companies.Company) bool {
	if u.Role == users.RoleSuperAdmin {
		return true
	}
	return co != nil && co.IsPartner
}
