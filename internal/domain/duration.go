package domain

import "fmt"

// Duration is a timeline such as "12 weeks".
type Duration struct {
	Value int      `json:"value" yaml:"value" validate:"gte=1"`
	Unit  TimeUnit `json:"unit" yaml:"unit" validate:"oneof=days weeks months"`
}

// DefaultTimeline is the timeline given to a blank goal.
var DefaultTimeline = Duration{Value: 12, Unit: UnitWeeks}

// Validate checks that Value is at least 1 and Unit is recognized.
func (d Duration) Validate() error {
	return validateStruct("timeline", d)
}

func (d Duration) String() string {
	return fmt.Sprintf("%d %s", d.Value, d.Unit)
}

// Days approximates the duration in days (a month counts as 30 days).
func (d Duration) Days() int {
	switch d.Unit {
	case UnitDays:
		return d.Value
	case UnitWeeks:
		return d.Value * 7
	case UnitMonths:
		return d.Value * 30
	default:
		return 0
	}
}

// SumDuration totals durations and expresses the result in weeks when it
// divides evenly, otherwise in days.
func SumDuration(ds ...Duration) Duration {
	total := 0
	for _, d := range ds {
		total += d.Days()
	}
	if total > 0 && total%7 == 0 {
		return Duration{Value: total / 7, Unit: UnitWeeks}
	}
	return Duration{Value: total, Unit: UnitDays}
}
