package entitlements

import (
	"testing"

	"property-app/internal/domain/companies"
	"property-app/internal/domain/plans"
	"property-app/internal/domain/users"
)

func strPtr(s string) *string { return &s }

func TestResolveAssignedPlan(t *testing.T) {
	co := companies.Company{AssignedPlanID: plans.PlanAgentPro, SubscriptionStatus: companies.StatusActive}

	eff := Resolve(co)
	if eff.Plan.ID != plans.PlanAgentPro {
		t.Fatalf("effective plan = %q, want %q", eff.Plan.ID, plans.PlanAgentPro)
	}
	if eff.IsOverridden {
		t.Error("IsOverridden = true without an override set")
	}
	if eff.Status != companies.StatusActive {
		t.Errorf("Status = %q, want %q", eff.Status, companies.StatusActive)
	}
}

func TestResolveOverrideWins(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{"active subscription", companies.StatusActive},
		{"cancelled subscription", companies.StatusCancelled},
		{"past due subscription", companies.StatusPastDue},
		{"no subscription", companies.StatusNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			co := companies.Company{
				AssignedPlanID:     plans.PlanLandlordFree,
				OverridePlanID:     strPtr(plans.PlanBrokerageCommand),
				SubscriptionStatus: tt.status,
			}
			eff := Resolve(co)
			if eff.Plan.ID != plans.PlanBrokerageCommand {
				t.Fatalf("effective plan = %q, want override %q", eff.Plan.ID, plans.PlanBrokerageCommand)
			}
			if !eff.IsOverridden {
				t.Error("IsOverridden = false with an override set")
			}
		})
	}
}

func TestResolveEmptyOverrideIgnored(t *testing.T) {
	co := companies.Company{
		AssignedPlanID: plans.PlanLandlordPlus,
		OverridePlanID: strPtr(""),
	}
	eff := Resolve(co)
	if eff.Plan.ID != plans.PlanLandlordPlus {
		t.Fatalf("effective plan = %q, want assigned %q", eff.Plan.ID, plans.PlanLandlordPlus)
	}
	if eff.IsOverridden {
		t.Error("empty override string counted as an override")
	}
}

func TestResolveUnknownPlanFallsBack(t *testing.T) {
	tests := []struct {
		name string
		co   companies.Company
	}{
		{"unknown assigned plan", companies.Company{AssignedPlanID: "retired_tier"}},
		{"empty assigned plan", companies.Company{AssignedPlanID: ""}},
		{"unknown override plan", companies.Company{
			AssignedPlanID: plans.PlanAgentPro,
			OverridePlanID: strPtr("retired_tier"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff := Resolve(tt.co)
			if eff.Plan.ID != plans.DefaultPlanID {
				t.Fatalf("effective plan = %q, want fallback %q", eff.Plan.ID, plans.DefaultPlanID)
			}
		})
	}
}

func TestHasFullAccess(t *testing.T) {
	partner := companies.Company{IsPartner: true}
	regular := companies.Company{}

	tests := []struct {
		name string
		user users.User
		co   *companies.Company
		want bool
	}{
		{"super admin without company", users.User{Role: users.RoleSuperAdmin}, nil, true},
		{"super admin with regular company", users.User{Role: users.RoleSuperAdmin}, &regular, true},
		{"regular user at partner company", users.User{Role: users.RoleUser}, &partner, true},
		{"admin at regular company", users.User{Role: users.RoleAdmin}, &regular, false},
		{"regular user without company", users.User{Role: users.RoleUser}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFullAccess(tt.user, tt.co); got != tt.want {
				t.Fatalf("HasFullAccess = %v, want %v", got, tt.want)
			}
		})
	}
}
