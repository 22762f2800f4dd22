package entitlements

import (
	"net/http"
	"testing"

	"property-app/internal/domain/companies"
	"property-app/internal/domain/plans"
)

func TestGuardResourceAtLimit(t *testing.T) {
	co := companies.Company{
		AssignedPlanID:     plans.PlanAgentPro,
		SubscriptionStatus: companies.StatusActive,
	}

	out := GuardResource(co, false, plans.ResourceProperties, 25)
	if out.Allowed {
		t.Fatal("creation allowed at exactly the plan limit")
	}
	if out.HTTPStatus != http.StatusForbidden {
		t.Errorf("HTTPStatus = %d, want 403", out.HTTPStatus)
	}
	if out.Code != CodeLimitReached {
		t.Errorf("Code = %q, want %q", out.Code, CodeLimitReached)
	}
	if out.CurrentUsage != 25 || out.Limit != 25 {
		t.Errorf("CurrentUsage/Limit = %d/%d, want 25/25", out.CurrentUsage, out.Limit)
	}
	if !out.UpgradeRequired {
		t.Error("UpgradeRequired = false on a limit denial")
	}
}

func TestGuardResourceOverrideLiftsLimit(t *testing.T) {
	override := plans.PlanBrokerageCommand
	co := companies.Company{
		AssignedPlanID:     plans.PlanAgentPro,
		OverridePlanID:     &override,
		SubscriptionStatus: companies.StatusCancelled,
	}

	if out := GuardResource(co, false, plans.ResourceProperties, 25); !out.Allowed {
		t.Fatal("override to unlimited plan did not lift the limit")
	}
}

func TestGuardResourceFullAccessBypass(t *testing.T) {
	// Full access skips plan resolution entirely, even on a plan that
	// would deny and with a count far past any cap.
	co := companies.Company{AssignedPlanID: plans.PlanLandlordFree}

	if out := GuardResource(co, true, plans.ResourceProperties, 9999); !out.Allowed {
		t.Fatal("full access caller was limit-checked")
	}
	if out := GuardFeature(co, true, plans.FeatureAssistant); !out.Allowed {
		t.Fatal("full access caller was feature-checked")
	}
}

func TestGuardFeatureDenied(t *testing.T) {
	co := companies.Company{AssignedPlanID: plans.PlanLandlordFree}

	out := GuardFeature(co, false, plans.FeatureSocial)
	if out.Allowed {
		t.Fatal("free tier was granted the social scheduler")
	}
	if out.HTTPStatus != http.StatusForbidden || out.Code != CodeFeatureUnavailable {
		t.Errorf("got %d/%q, want 403/%q", out.HTTPStatus, out.Code, CodeFeatureUnavailable)
	}
}

func TestGuardFeatureGranted(t *testing.T) {
	co := companies.Company{AssignedPlanID: plans.PlanLandlordPlus}
	if out := GuardFeature(co, false, plans.FeatureInvoices); !out.Allowed {
		t.Fatal("plus tier was denied invoices")
	}
}
