package entitlements

import (
	"errors"
	"net/http"

	"property-app/internal/domain/companies"
)

// Machine-readable denial codes surfaced in HTTP response bodies.
const (
	CodeLimitReached       = "LIMIT_REACHED"
	CodeFeatureUnavailable = "FEATURE_NOT_AVAILABLE"
	CodeNoCompany          = "NO_COMPANY"
)

// ErrLimitReached signals a denied resource creation inside a
// transaction so the handler can roll back and shape the 403.
var ErrLimitReached = errors.New("plan limit reached")

// Outcome is a fully shaped gate decision, ready to serialize.
type Outcome struct {
	Allowed         bool
	HTTPStatus      int
	Code            string
	CurrentUsage    int
	Limit           int
	UpgradeRequired bool
}

// GuardResource runs the full per-request gate sequence over
// already-fetched inputs: full-access bypass, plan resolution, then
// the limit check. currentCount must be the live row count for the
// company. The sequence is re-run on every request so plan changes
// take effect immediately.
func GuardResource(co companies.Company, fullAccess bool, resource string, currentCount int) Outcome {
	if fullAccess {
		return Outcome{Allowed: true}
	}

	dec := CanAddResource(Resolve(co), resource, currentCount)
	if dec.Allowed {
		return Outcome{Allowed: true}
	}

	return Outcome{
		Allowed:         false,
		HTTPStatus:      http.StatusForbidden,
		Code:            CodeLimitReached,
		CurrentUsage:    currentCount,
		Limit:           dec.Limit,
		UpgradeRequired: true,
	}
}

// GuardFeature is the feature-flag counterpart of GuardResource.
func GuardFeature(co companies.Company, fullAccess bool, feature string) Outcome {
	if fullAccess {
		return Outcome{Allowed: true}
	}

	if CanUseFeature(Resolve(co), feature) {
		return Outcome{Allowed: true}
	}

	return Outcome{
		Allowed:         false,
		HTTPStatus:      http.StatusForbidden,
		Code:            CodeFeatureUnavailable,
		UpgradeRequired: true,
	}
}
