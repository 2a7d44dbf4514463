package budget

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBudget_StatusFor(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		spent string
		want  Status
	}{
		{
			name:  "spending below the limit is within budget",
			limit: "100.00",
			spent: "99.99",
			want:  StatusWithinBudget,
		},
		{
			name:  "spending exactly the limit is within budget",
			limit: "100.00",
			spent: "100.00",
			want:  StatusWithinBudget,
		},
		{
			name:  "spending just over the limit is exceeded",
			limit: "100.00",
			spent: "100.01",
			want:  StatusExceeded,
		},
		{
			name:  "no spending against a zero limit is within budget",
			limit: "0",
			spent: "0",
			want:  StatusWithinBudget,
		},
		{
			name:  "any spending against a zero limit is exceeded",
			limit: "0",
			spent: "0.01",
			want:  StatusExceeded,
		},
		{
			name:  "equality holds across representations",
			limit: "100",
			spent: "100.00",
			want:  StatusWithinBudget,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Budget{
				Month: "2024-03",
				Limit: decimal.RequireFromString(tt.limit),
			}
			if got := b.StatusFor(decimal.RequireFromString(tt.spent)); got != tt.want {
				t.Errorf("StatusFor() = %v, want %v", got, tt.want)
			}
		})
	}
}
