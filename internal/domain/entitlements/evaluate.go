package entitlements

import "property-app/internal/domain/plans"

// UnknownFeatureAllowed is the policy for feature names absent from a
// plan's feature map. Entitlement checks exist to restrict, so an
// unknown feature is denied.
const UnknownFeatureAllowed = false

// CanUseFeature reports whether the effective plan grants a feature.
func CanUseFeature(e Effective, feature string) bool {
	allowed, ok := e.Plan.Features[feature]
	if !ok {
		return UnknownFeatureAllowed
	}
	return allowed
}

// Decision is the outcome of a countable-resource check. Limit and
// Remaining are plans.Unlimited when no cap applies.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
}

// CanAddResource reports whether one more row of resource may be
// created given the current live count. The comparison is strict: a
// company at exactly the limit cannot add another.
func CanAddResource(e Effective, resource string, currentCount int) Decision {
	limit, ok := e.Plan.Limits[resource]
	if !ok {
		// Unknown resource names are denied, same policy as features.
		return Decision{Allowed: false, Limit: 0, Remaining: 0}
	}

	if limit == plans.Unlimited {
		return Decision{Allowed: true, Limit: plans.Unlimited, Remaining: plans.Unlimited}
	}

	remaining := limit - currentCount
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   currentCount < limit,
		Limit:     limit,
		Remaining: remaining,
	}
}
