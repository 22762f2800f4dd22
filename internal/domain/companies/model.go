package companies

import "time"

// Subscription status values stored on a company. Stripe statuses are
// normalized into this set before they reach the database.
const (
	StatusTrialing  = "trialing"
	StatusActive    = "active"
	StatusPastDue   = "past_due"
	StatusCancelled = "cancelled"
	StatusNone      = "none"
)

// Company is the tenant: the unit of billing and data isolation.
// Companies are never hard-deleted, only status-transitioned.
type Company struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	OwnerUserID uint   `gorm:"index" json:"owner_user_id"`

	AssignedPlanID string `gorm:"type:varchar(40);not null;default:'landlord_free'" json:"assigned_plan_id"`

	// Admin-set override. Takes precedence over AssignedPlanID
	// regardless of SubscriptionStatus; a cleared override falls
	// through to the assigned plan.
	OverridePlanID *string    `gorm:"type:varchar(40)" json:"override_plan_id,omitempty"`
	OverrideReason *string    `json:"override_reason,omitempty"`
	OverrideBy     *uint      `json:"override_by,omitempty"`
	OverrideAt     *time.Time `json:"override_at,omitempty"`

	SubscriptionStatus string `gorm:"type:varchar(20);not null;default:'none'" json:"subscription_status"`

	// Partner companies get full access without consulting plan logic.
	IsPartner bool `gorm:"not null;default:false" json:"is_partner"`

	StripeCustomerID *string    `gorm:"column:stripe_customer_id;uniqueIndex:idx_companies_stripe_customer_id" json:"-"`
	SubscriptionID   *string    `gorm:"column:subscription_id;uniqueIndex:idx_companies_subscription_id" json:"-"`
	CurrentPeriodEnd *time.Time `gorm:"column:current_period_end" json:"current_period_end,omitempty"`

	TrialStartAt *time.Time `gorm:"column:trial_start_at" json:"trial_start_at,omitempty"`
	TrialEndAt   *time.Time `gorm:"column:trial_end_at" json:"trial_end_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
