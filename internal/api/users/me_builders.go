package users

import (
	"time"

	"property-app/internal/domain/companies"
	"property-app/internal/domain/entitlements"
	"property-app/internal/domain/plans"
)

func BuildCompanyDTO(co *companies.Company) *CompanyDTO {
	if co == nil {
		return nil
	}
	return &CompanyDTO{
		ID:        co.ID,
		Name:      co.Name,
		IsPartner: co.IsPartner,
	}
}

func BuildPlanDTO(eff entitlements.Effective) *PlanDTO {
	return &PlanDTO{
		ID:              eff.Plan.ID,
		Name:            eff.Plan.Name,
		MonthlyPriceEUR: eff.Plan.MonthlyPriceEUR,
		IsOverridden:    eff.IsOverridden,
	}
}

func BuildSubscriptionDTO(co *companies.Company) *SubscriptionDTO {
	if co == nil || co.SubscriptionID == nil || *co.SubscriptionID == "" {
		return nil
	}
	return &SubscriptionDTO{
		Status:           co.SubscriptionStatus,
		CurrentPeriodEnd: co.CurrentPeriodEnd,
	}
}

func BuildTrialDTO(now time.Time, start, end *time.Time) *TrialDTO {
	if start == nil || end == nil {
		return nil
	}

	var daysLeft *int
	if now.Before(*end) {
		d := int(end.Sub(now).Hours() / 24)
		if d < 0 {
			d = 0
		}
		daysLeft = &d
	} else {
		d := 0
		daysLeft = &d
	}

	return &TrialDTO{
		StartsAt: start,
		EndsAt:   end,
		DaysLeft: daysLeft,
	}
}

// BuildUsageDTO shapes one resource's live count against the effective
// plan, reusing the evaluator so /me and the gate can never disagree.
func BuildUsageDTO(eff entitlements.Effective, resource string, used int) UsageDTO {
	dec := entitlements.CanAddResource(eff, resource, used)
	return UsageDTO{
		Resource:  resource,
		Used:      used,
		Limit:     dec.Limit,
		Remaining: dec.Remaining,
	}
}

// BuildFeatureList returns the feature names granted by the effective plan.
func BuildFeatureList(eff entitlements.Effective) []string {
	out := make([]string, 0, len(eff.Plan.Features))
	for _, f := range []string{
		plans.FeatureDocuments,
		plans.FeatureInvoices,
		plans.FeatureAutomations,
		plans.FeatureTenantPortal,
		plans.FeatureMaintenance,
		plans.FeatureSocial,
		plans.FeatureAssistant,
		plans.FeatureBranding,
	} {
		if entitlements.CanUseFeature(eff, f) {
			out = append(out, f)
		}
	}
	return out
}
