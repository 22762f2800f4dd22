package users

import "time"

type MeDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`

	Company      *CompanyDTO      `json:"company,omitempty"`
	Plan         *PlanDTO         `json:"plan,omitempty"`
	Subscription *SubscriptionDTO `json:"subscription,omitempty"`
	Trial        *TrialDTO        `json:"trial,omitempty"`

	FullAccess bool       `json:"full_access"`
	Usage      []UsageDTO `json:"usage,omitempty"`
	Features   []string   `json:"features,omitempty"`
}

type CompanyDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	IsPartner bool   `json:"is_partner"`
}

type PlanDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	MonthlyPriceEUR float64 `json:"monthly_price_eur"`
	IsOverridden    bool    `json:"is_overridden"`
}

type SubscriptionDTO struct {
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

type TrialDTO struct {
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	DaysLeft *int       `json:"days_left,omitempty"`
}

// UsageDTO reports live usage against the effective plan's limit.
// Limit and Remaining are -1 when unlimited.
type UsageDTO struct {
	Resource  string `json:"resource"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}
