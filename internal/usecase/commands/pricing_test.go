//go:build unit

package commands

import (
	"testing"

	"courtbook/internal/domain/pricing"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRules(t *testing.T) {
	courtID := uuid.New()

	t.Run("single rule without propagation", func(t *testing.T) {
		rules, err := buildRules(courtID, reqdto.UpsertPricingRuleRequest{
			DayOfWeek: 3, StartTime: "10:00", PriceCents: 1500,
		})
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, pricing.Wednesday, rules[0].DayOfWeek())
		assert.Equal(t, int64(1500), rules[0].Price().Cents())
	})

	t.Run("Monday rule fans out to Tuesday through Friday", func(t *testing.T) {
		rules, err := buildRules(courtID, reqdto.UpsertPricingRuleRequest{
			DayOfWeek: 1, StartTime: "10:00", PriceCents: 1500, ApplyToWeekdays: true,
		})
		require.NoError(t, err)
		require.Len(t, rules, 5)

		days := make([]pricing.DayOfWeek, 0, len(rules))
		for _, r := range rules {
			days = append(days, r.DayOfWeek())
			assert.Equal(t, courtID, r.CourtID())
			assert.Equal(t, "10:00", r.StartTime().String())
			assert.Equal(t, int64(1500), r.Price().Cents())
		}
		assert.Equal(t, []pricing.DayOfWeek{
			pricing.Monday, pricing.Tuesday, pricing.Wednesday, pricing.Thursday, pricing.Friday,
		}, days)
	})

	t.Run("copies are independent rows", func(t *testing.T) {
		rules, err := buildRules(courtID, reqdto.UpsertPricingRuleRequest{
			DayOfWeek: 1, StartTime: "10:00", PriceCents: 1500, ApplyToWeekdays: true,
		})
		require.NoError(t, err)
		seen := map[uuid.UUID]bool{}
		for _, r := range rules {
			assert.False(t, seen[r.ID()])
			seen[r.ID()] = true
		}
	})

	t.Run("Saturday rule propagates to Sunday only", func(t *testing.T) {
		rules, err := buildRules(courtID, reqdto.UpsertPricingRuleRequest{
			DayOfWeek: 6, StartTime: "09:00", PriceCents: 2600, ApplyToWeekdays: true,
		})
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, pricing.Saturday, rules[0].DayOfWeek())
		assert.Equal(t, pricing.Sunday, rules[1].DayOfWeek())
	})

	t.Run("propagating from any other day is rejected", func(t *testing.T) {
		_, err := buildRules(courtID, reqdto.UpsertPricingRuleRequest{
			DayOfWeek: 3, StartTime: "10:00", PriceCents: 1500, ApplyToWeekdays: true,
		})
		assert.ErrorIs(t, err, ErrPropagationDay)
	})

	t.Run("invalid inputs surface as validation errors", func(t *testing.T) {
		cases := []struct {
			name string
			req  reqdto.UpsertPricingRuleRequest
		}{
			{name: "bad day", req: reqdto.UpsertPricingRuleRequest{DayOfWeek: 7, StartTime: "10:00", PriceCents: 1500}},
			{name: "bad time", req: reqdto.UpsertPricingRuleRequest{DayOfWeek: 1, StartTime: "25:99", PriceCents: 1500}},
			{name: "negative price", req: reqdto.UpsertPricingRuleRequest{DayOfWeek: 1, StartTime: "10:00", PriceCents: -1}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := buildRules(courtID, tc.req)
				assert.ErrorIs(t, err, errs.ErrDomainValidation)
			})
		}
	})
}
