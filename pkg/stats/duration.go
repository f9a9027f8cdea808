package stats

import (
	"errors"
	"fmt"
	"time"

	"github.com/jSchiffart/whatsapp-analytics/pkg/parser"
)

// ErrEmptySequence is returned by aggregations that need at least one
// message with a valid timestamp.
var ErrEmptySequence = errors.New("message sequence is empty")

// Unit is a time unit for expressing the conversation span.
type Unit string

const (
	UnitSeconds Unit = "seconds"
	UnitMinutes Unit = "minutes"
	UnitHours   Unit = "hours"
	UnitDays    Unit = "days"
	UnitWeeks   Unit = "weeks"
	UnitMonths  Unit = "months"
	UnitYears   Unit = "years"
)

// Calendar-average lengths used for the approximate units.
const (
	hoursPerDay   = 24
	daysPerWeek   = 7
	daysPerMonth  = 30.436875
	daysPerYear   = 365.25
	secondsPerDay = 86400
)

// ParseUnit converts a unit name to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitSeconds, UnitMinutes, UnitHours, UnitDays, UnitWeeks, UnitMonths, UnitYears:
		return Unit(s), nil
	default:
		return "", fmt.Errorf("unknown unit %q (use seconds, minutes, hours, days, weeks, months, or years)", s)
	}
}

// FirstTimestamp returns the timestamp of the first message carrying a
// valid timestamp. Fails with ErrEmptySequence when there is none.
func FirstTimestamp(msgs []parser.Message) (time.Time, error) {
	for _, m := range msgs {
		if !m.Invalid {
			return m.Timestamp, nil
		}
	}
	return time.Time{}, ErrEmptySequence
}

// LastTimestamp returns the timestamp of the last message carrying a
// valid timestamp. Fails with ErrEmptySequence when there is none.
func LastTimestamp(msgs []parser.Message) (time.Time, error) {
	for i := len(msgs) - 1; i >= 0; i-- {
		if !msgs[i].Invalid {
			return msgs[i].Timestamp, nil
		}
	}
	return time.Time{}, ErrEmptySequence
}

// DurationIn returns the elapsed time between the first and last message,
// expressed in the given unit. Months and years use calendar averages
// (30.436875 and 365.25 days). Fails with ErrEmptySequence on a sequence
// without valid timestamps.
func DurationIn(unit Unit, msgs []parser.Message) (float64, error) {
	first, err := FirstTimestamp(msgs)
	if err != nil {
		return 0, err
	}
	last, err := LastTimestamp(msgs)
	if err != nil {
		return 0, err
	}

	span := last.Sub(first)
	switch unit {
	case UnitSeconds:
		return span.Seconds(), nil
	case UnitMinutes:
		return span.Minutes(), nil
	case UnitHours:
		return span.Hours(), nil
	case UnitDays:
		return span.Hours() / hoursPerDay, nil
	case UnitWeeks:
		return span.Hours() / hoursPerDay / daysPerWeek, nil
	case UnitMonths:
		return span.Seconds() / (secondsPerDay * daysPerMonth), nil
	case UnitYears:
		return span.Seconds() / (secondsPerDay * daysPerYear), nil
	default:
		return 0, fmt.Errorf("unknown unit %q", unit)
	}
}
