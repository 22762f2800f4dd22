package stripe

import (
	"testing"

	"property-app/internal/domain/companies"
)

func TestNormalizeStripeStatus(t *testing.T) {
	ptr := func(s string) *string { return &s }

	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"nil", nil, companies.StatusNone},
		{"empty", ptr(""), companies.StatusNone},
		{"whitespace", ptr("  "), companies.StatusNone},
		{"active", ptr("active"), companies.StatusActive},
		{"trialing", ptr("trialing"), companies.StatusTrialing},
		{"past_due", ptr("past_due"), companies.StatusPastDue},
		{"unpaid maps to past_due", ptr("unpaid"), companies.StatusPastDue},
		{"canceled maps to cancelled", ptr("canceled"), companies.StatusCancelled},
		{"incomplete_expired maps to cancelled", ptr("incomplete_expired"), companies.StatusCancelled},
		{"unknown future status", ptr("paused"), companies.StatusNone},
		{"padded", ptr(" active "), companies.StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeStripeStatus(tt.in); got != tt.want {
				t.Fatalf("NormalizeStripeStatus = %q, want %q", got, tt.want)
			}
		})
	}
}
