package entitlements

import (
	"fmt"

	"property-app/internal/domain/plans"
	"property-app/internal/domain/properties"
	"property-app/internal/domain/social"
	"property-app/internal/domain/users"

	"gorm.io/gorm"
)

// CountResource returns the live row count for a company's resource.
// Counts are always compared against the effective plan's limit, so
// they are fetched fresh on every gated request.
func CountResource(db *gorm.DB, companyID uint, resource string) (int64, error) {
	var count int64
	var err error

	switch resource {
	case plans.ResourceProperties:
		err = db.Model(&properties.Property{}).
			Where("company_id = ?", companyID).
			Count(&count).Error

	case plans.ResourceTeamMembers:
		err = db.Model(&users.User{}).
			Where("company_id = ?", companyID).
			Count(&count).Error

	case plans.ResourceSocialPosts:
		// Only pending posts count against the cap.
		err = db.Model(&social.Post{}).
			Where("company_id = ? AND status = ?", companyID, social.StatusScheduled).
			Count(&count).Error

	default:
		return 0, fmt.Errorf("unknown countable resource %q", resource)
	}

	if err != nil {
		return 0, fmt.Errorf("failed to count %s for company %d: %w", resource, companyID, err)
	}
	return count, nil
}
