package request

type UpsertPricingRuleRequest struct {
	DayOfWeek  int    `json:"day_of_week" binding:"gte=0,lte=6"`
	StartTime  string `json:"start_time" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required,gt=0"`
	// ApplyToWeekdays propagates a Monday rule to Tuesday through Friday and
	// a Saturday rule to Sunday.
	ApplyToWeekdays bool `json:"apply_to_weekdays"`
}

type BatchPricingRulesRequest struct {
	Rules []UpsertPricingRuleRequest `json:"rules" binding:"required,min=1,dive"`
}
