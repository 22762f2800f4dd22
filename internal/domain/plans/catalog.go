package plans

import "sort"

// Unlimited means no numeric cap applies to a resource. It is a
// distinguished sentinel, distinct from every finite limit including 0.
const Unlimited = -1

// Countable resources gated by plan limits.
const (
	ResourceProperties  = "properties"
	ResourceTeamMembers = "team_members"
	ResourceSocialPosts = "social_posts"
)

// Feature flags.
const (
	FeatureDocuments    = "documents"
	FeatureInvoices     = "invoices"
	FeatureAutomations  = "automations"
	FeatureTenantPortal = "tenant_portal"
	FeatureMaintenance  = "maintenance_tracking"
	FeatureSocial       = "social_scheduler"
	FeatureAssistant    = "ai_assistant"
	FeatureBranding     = "custom_branding"
)

// Plan ids (single source of truth)
const (
	PlanLandlordFree     = "landlord_free"
	PlanLandlordPlus     = "landlord_plus"
	PlanAgentPro         = "agent_pro"
	PlanBrokerageCommand = "brokerage_command"
)

// DefaultPlanID is the lowest tier. Unknown or missing plan ids always
// degrade here, never to an error.
const DefaultPlanID = PlanLandlordFree

type Definition struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	MonthlyPriceEUR float64         `json:"monthly_price_eur"`
	Limits          map[string]int  `json:"limits"`
	Features        map[string]bool `json:"features"`
}

// catalog is built once at init and never mutated afterwards.
var catalog = map[string]Definition{
	PlanLandlordFree: {
		ID:              PlanLandlordFree,
		Name:            "Landlord Free",
		MonthlyPriceEUR: 0,
		Limits: map[string]int{
			ResourceProperties:  3,
			ResourceTeamMembers: 1,
			ResourceSocialPosts: 0,
		},
		Features: map[string]bool{
			FeatureDocuments:    false,
			FeatureInvoices:     false,
			FeatureAutomations:  false,
			FeatureTenantPortal: false,
			FeatureMaintenance:  true,
			FeatureSocial:       false,
			FeatureAssistant:    false,
			FeatureBranding:     false,
		},
	},
	PlanLandlordPlus: {
		ID:              PlanLandlordPlus,
		Name:            "Landlord Plus",
		MonthlyPriceEUR: 29,
		Limits: map[string]int{
			ResourceProperties:  10,
			ResourceTeamMembers: 3,
			ResourceSocialPosts: 10,
		},
		Features: map[string]bool{
			FeatureDocuments:    true,
			FeatureInvoices:     true,
			FeatureAutomations:  false,
			FeatureTenantPortal: true,
			FeatureMaintenance:  true,
			FeatureSocial:       false,
			FeatureAssistant:    false,
			FeatureBranding:     false,
		},
	},
	PlanAgentPro: {
		ID:              PlanAgentPro,
		Name:            "Agent Pro",
		MonthlyPriceEUR: 79,
		Limits: map[string]int{
			ResourceProperties:  25,
			ResourceTeamMembers: 10,
			ResourceSocialPosts: 50,
		},
		Features: map[string]bool{
			FeatureDocuments:    true,
			FeatureInvoices:     true,
			FeatureAutomations:  true,
			FeatureTenantPortal: true,
			FeatureMaintenance:  true,
			FeatureSocial:       true,
			FeatureAssistant:    false,
			FeatureBranding:     false,
		},
	},
	PlanBrokerageCommand: {
		ID:              PlanBrokerageCommand,
		Name:            "Brokerage Command",
		MonthlyPriceEUR: 199,
		Limits: map[string]int{
			ResourceProperties:  Unlimited,
			ResourceTeamMembers: Unlimited,
			ResourceSocialPosts: Unlimited,
		},
		Features: map[string]bool{
			FeatureDocuments:    true,
			FeatureInvoices:     true,
			FeatureAutomations:  true,
			FeatureTenantPortal: true,
			FeatureMaintenance:  true,
			FeatureSocial:       true,
			FeatureAssistant:    true,
			FeatureBranding:     true,
		},
	},
}

// Lookup returns the plan definition for id. Callers must treat a miss
// as "fall back", never as a crash.
func Lookup(id string) (Definition, bool) {
	def, ok := catalog[id]
	return def, ok
}

// Default returns the lowest-tier plan.
func Default() Definition {
	return catalog[DefaultPlanID]
}

// All returns every plan, cheapest first, for listing.
func All() []Definition {
	out := make([]Definition, 0, len(catalog))
	for _, def := range catalog {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MonthlyPriceEUR < out[j].MonthlyPriceEUR
	})
	return out
}

// Resources lists every countable resource name.
func Resources() []string {
	return []string{ResourceProperties, ResourceTeamMembers, ResourceSocialPosts}
}
