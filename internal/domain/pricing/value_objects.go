package pricing

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNegativeMoney    = errors.New("money cannot be negative")
	ErrInvalidClockTime = errors.New("time must be formatted as HH:MM")
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

// RoundToUnit rounds to the nearest whole currency unit. Display prices use
// whole units; persisted slot prices keep cent precision.
func (m Money) RoundToUnit() Money {
	units := (m.cents + 50) / 100
	return Money{cents: units * 100}
}

func (m Money) Units() int64 {
	return m.cents / 100
}

// ClockTime is a wall-clock "HH:MM" time of day.
type ClockTime struct {
	hour   int
	minute int
}

func NewClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{hour: t.Hour(), minute: t.Minute()}, nil
}

func (ct ClockTime) Hour() int {
	return ct.hour
}

func (ct ClockTime) Minute() int {
	return ct.minute
}

func (ct ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", ct.hour, ct.minute)
}

func (ct ClockTime) Before(other ClockTime) bool {
	if ct.hour != other.hour {
		return ct.hour < other.hour
	}
	return ct.minute < other.minute
}

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func NewDayOfWeek(d int) (DayOfWeek, error) {
	if d < 0 || d > 6 {
		return 0, ErrInvalidDayOfWeek
	}
	return DayOfWeek(d), nil
}

func DayOfWeekFromDate(date time.Time) DayOfWeek {
	return DayOfWeek(int(date.Weekday()))
}

func (d DayOfWeek) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

func (d DayOfWeek) Int() int {
	return int(d)
}

// Weekdays returns Tuesday through Friday, the propagation targets of a
// Monday rule.
func Weekdays() []DayOfWeek {
	return []DayOfWeek{Tuesday, Wednesday, Thursday, Friday}
}
