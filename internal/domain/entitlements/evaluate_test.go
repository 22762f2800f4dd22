package entitlements

import (
	"testing"

	"property-app/internal/domain/plans"
)

func effectiveFor(t *testing.T, planID string) Effective {
	t.Helper()
	def, ok := plans.Lookup(planID)
	if !ok {
		t.Fatalf("plan %q not in catalog", planID)
	}
	return Effective{Plan: def}
}

func TestCanUseFeature(t *testing.T) {
	tests := []struct {
		name    string
		planID  string
		feature string
		want    bool
	}{
		{"free tier denied invoices", plans.PlanLandlordFree, plans.FeatureInvoices, false},
		{"free tier granted maintenance", plans.PlanLandlordFree, plans.FeatureMaintenance, true},
		{"plus tier granted invoices", plans.PlanLandlordPlus, plans.FeatureInvoices, true},
		{"agent tier denied assistant", plans.PlanAgentPro, plans.FeatureAssistant, false},
		{"top tier granted everything", plans.PlanBrokerageCommand, plans.FeatureBranding, true},
		{"unknown feature denied", plans.PlanBrokerageCommand, "time_travel", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanUseFeature(effectiveFor(t, tt.planID), tt.feature); got != tt.want {
				t.Fatalf("CanUseFeature(%s, %s) = %v, want %v", tt.planID, tt.feature, got, tt.want)
			}
		})
	}
}

func TestCanAddResourceBoundary(t *testing.T) {
	// landlord_free caps properties at 3.
	eff := effectiveFor(t, plans.PlanLandlordFree)

	tests := []struct {
		count         int
		wantAllowed   bool
		wantRemaining int
	}{
		{0, true, 3},
		{2, true, 1},
		{3, false, 0},
		{4, false, 0}, // over-limit after a downgrade
	}

	for _, tt := range tests {
		dec := CanAddResource(eff, plans.ResourceProperties, tt.count)
		if dec.Allowed != tt.wantAllowed {
			t.Errorf("count=%d: Allowed = %v, want %v", tt.count, dec.Allowed, tt.wantAllowed)
		}
		if dec.Remaining != tt.wantRemaining {
			t.Errorf("count=%d: Remaining = %d, want %d", tt.count, dec.Remaining, tt.wantRemaining)
		}
		if dec.Limit != 3 {
			t.Errorf("count=%d: Limit = %d, want 3", tt.count, dec.Limit)
		}
	}
}

func TestCanAddResourceZeroLimit(t *testing.T) {
	// landlord_free allows zero social posts: denied from the first one.
	dec := CanAddResource(effectiveFor(t, plans.PlanLandlordFree), plans.ResourceSocialPosts, 0)
	if dec.Allowed {
		t.Fatal("zero-limit resource allowed a first row")
	}
	if dec.Limit != 0 || dec.Remaining != 0 {
		t.Fatalf("Limit/Remaining = %d/%d, want 0/0", dec.Limit, dec.Remaining)
	}
}

func TestCanAddResourceUnlimited(t *testing.T) {
	eff := effectiveFor(t, plans.PlanBrokerageCommand)
	for _, count := range []int{0, 1000, 1 << 20} {
		dec := CanAddResource(eff, plans.ResourceProperties, count)
		if !dec.Allowed {
			t.Fatalf("unlimited plan denied at count %d", count)
		}
		if dec.Limit != plans.Unlimited || dec.Remaining != plans.Unlimited {
			t.Fatalf("count=%d: Limit/Remaining = %d/%d, want sentinel", count, dec.Limit, dec.Remaining)
		}
	}
}

func TestCanAddUnknownResourceDenied(t *testing.T) {
	dec := CanAddResource(effectiveFor(t, plans.PlanBrokerageCommand), "parking_spots", 0)
	if dec.Allowed {
		t.Fatal("unknown resource name was allowed")
	}
}
