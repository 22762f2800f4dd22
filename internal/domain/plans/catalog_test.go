package plans

import "testing"

func TestLookupKnownPlans(t *testing.T) {
	for _, id := range []string{PlanLandlordFree, PlanLandlordPlus, PlanAgentPro, PlanBrokerageCommand} {
		def, ok := Lookup(id)
		if !ok {
			t.Fatalf("Lookup(%q) = miss, want hit", id)
		}
		if def.ID != id {
			t.Errorf("Lookup(%q).ID = %q, want %q", id, def.ID, id)
		}
	}
}

func TestLookupUnknownPlan(t *testing.T) {
	if _, ok := Lookup("enterprise_legacy"); ok {
		t.Fatal("Lookup of unknown plan id reported a hit")
	}
	if _, ok := Lookup(""); ok {
		t.Fatal("Lookup of empty plan id reported a hit")
	}
}

func TestDefaultIsInCatalog(t *testing.T) {
	def := Default()
	if def.ID != DefaultPlanID {
		t.Fatalf("Default().ID = %q, want %q", def.ID, DefaultPlanID)
	}
	if _, ok := Lookup(DefaultPlanID); !ok {
		t.Fatalf("DefaultPlanID %q is not in the catalog", DefaultPlanID)
	}
}

func TestEveryPlanCoversAllResources(t *testing.T) {
	for _, def := range All() {
		for _, res := range Resources() {
			if _, ok := def.Limits[res]; !ok {
				t.Errorf("plan %q has no limit for resource %q", def.ID, res)
			}
		}
	}
}

func TestUnlimitedIsDistinctFromZero(t *testing.T) {
	// A plan may legitimately cap a resource at 0 (free tier social
	// posts); that must never read as unlimited.
	free, _ := Lookup(PlanLandlordFree)
	if free.Limits[ResourceSocialPosts] == Unlimited {
		t.Fatal("free tier social post cap of 0 collides with the Unlimited sentinel")
	}
	top, _ := Lookup(PlanBrokerageCommand)
	if top.Limits[ResourceProperties] != Unlimited {
		t.Fatalf("top tier properties limit = %d, want Unlimited", top.Limits[ResourceProperties])
	}
}

func TestAllSortedByPrice(t *testing.T) {
	all := All()
	if len(all) != 4 {
		t.Fatalf("All() returned %d plans, want 4", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].MonthlyPriceEUR > all[i].MonthlyPriceEUR {
			t.Errorf("All() not sorted: %q (%.0f) before %q (%.0f)",
				all[i-1].ID, all[i-1].MonthlyPriceEUR, all[i].ID, all[i].MonthlyPriceEUR)
		}
	}
}
