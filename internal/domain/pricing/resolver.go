package pricing

import "math"

// band is a time-of-day pricing window. Busier hours carry a higher
// multiplier over the court's base hourly rate.
type band struct {
	name       string
	fromHour   int // inclusive
	toHour     int // exclusive
	multiplier float64
}

var defaultBands = []band{
	{name: "early", fromHour: 6, toHour: 12, multiplier: 1.0},
	{name: "mid", fromHour: 12, toHour: 17, multiplier: 1.2},
	{name: "peak", fromHour: 17, toHour: 21, multiplier: 1.5},
	{name: "late", fromHour: 21, toHour: 24, multiplier: 1.3},
}

const defaultWeekendPremium = 0.2

// Resolver computes the effective price for a (court, day, start-time) tuple.
// An active Rule for the exact slot key wins over the formula entirely. The
// same resolver serves both virtual calendar slots and slot-row creation so
// the two paths cannot drift apart.
type Resolver struct {
	bands          []band
	weekendPremium float64
}

func NewResolver() *Resolver {
	return &Resolver{
		bands:          defaultBands,
		weekendPremium: defaultWeekendPremium,
	}
}

func (r *Resolver) Resolve(baseRate Money, day DayOfWeek, start ClockTime, rule *Rule) Money {
	if rule != nil && rule.IsActive() {
		return rule.Price()
	}

	multiplier := r.multiplierFor(start)
	if day.IsWeekend() {
		multiplier += r.weekendPremium
	}

	raw := float64(baseRate.Cents()) * multiplier
	units := math.Round(raw / 100)
	return Money{cents: int64(units) * 100}
}

// BandName identifies the time-of-day band a start time falls into; hours
// outside every band price at the base rate.
func (r *Resolver) BandName(start ClockTime) string {
	for _, b := range r.bands {
		if start.Hour() >= b.fromHour && start.Hour() < b.toHour {
			return b.name
		}
	}
	return "off"
}

func (r *Resolver) multiplierFor(start ClockTime) float64 {
	for _, b := range r.bands {
		if start.Hour() >= b.fromHour && start.Hour() < b.toHour {
			return b.multiplier
		}
	}
	return 1.0
}
