package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-yourage/internal/config"
)

// Date is a calendar date without a time-of-day component.
// The zero value means "no birthday".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a strict ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(config.DateFormatISO, value)
	if err != nil {
		return Date{}, fmt.Errorf("%s: %w", config.ErrDateParse, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Midnight returns the start of the day in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// String formats the date as YYYY-MM-DD, or "" when absent.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Midnight(time.UTC).Format(config.DateFormatISO)
}

// Breakdown is the elapsed time between a birthday and an instant.
// Every field is an independent truncation of the same total; hours is the
// total number of hours, not the hours left over after whole days.
type Breakdown struct {
	Years   int64
	Months  int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// ComputeAge measures the wall-clock time elapsed from midnight of birthday
// until now, as read on now's own clock. Zone offsets are ignored, so a
// daylight saving change never shifts the counts by an hour.
// A birthday in the future yields negative fields.
// Years and months are fixed 365- and 30-day approximations.
func ComputeAge(birthday Date, now time.Time) Breakdown {
	seconds := elapsedSeconds(birthday.Midnight(time.UTC), wallClock(now))
	days := seconds / config.SecondsPerDay

	return Breakdown{
		Years:   days / config.DaysPerYear,
		Months:  days / config.DaysPerMonth,
		Days:    days,
		Hours:   seconds / config.SecondsPerHour,
		Minutes: seconds / config.SecondsPerMinute,
		Seconds: seconds,
	}
}

// wallClock re-reads t's calendar and clock fields as a UTC instant.
func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, m, d, h, mi, s, t.Nanosecond(), time.UTC)
}

// elapsedSeconds returns now-from in whole seconds, truncated toward zero.
// Unix seconds are used instead of time.Duration, which overflows past ~292 years.
func elapsedSeconds(from, now time.Time) int64 {
	secs := now.Unix() - from.Unix()
	// Unix() floors; bring negative values with a fractional part back toward zero.
	if secs < 0 && now.Nanosecond() > from.Nanosecond() {
		secs++
	}
	return secs
}

// Label returns the unit noun for count: the singular when count is exactly
// one, the noun with a trailing "s" otherwise.
func Label(count int64, singular string) string {
	if count == 1 {
		return singular
	}
	return singular + config.PluralSuffix
}

// AgeLine is one displayable row of the breakdown, e.g. "10,958 days old".
type AgeLine struct {
	Unit  string // singular noun
	Value int64
	Text  string // formatted value
	Label string // pluralized noun
}

// String renders the line for display.
func (l AgeLine) String() string {
	return fmt.Sprintf(config.FormatAgeLine, l.Text, l.Label)
}

// Lines expands the breakdown into display rows, largest unit first.
func (b Breakdown) Lines() []AgeLine {
	rows := []struct {
		unit  string
		value int64
	}{
		{config.UnitYear, b.Years},
		{config.UnitMonth, b.Months},
		{config.UnitDay, b.Days},
		{config.UnitHour, b.Hours},
		{config.UnitMinute, b.Minutes},
		{config.UnitSecond, b.Seconds},
	}

	lines := make([]AgeLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, AgeLine{
			Unit:  r.unit,
			Value: r.value,
			Text:  FormatNumber(r.value),
			Label: Label(r.value, r.unit),
		})
	}
	return lines
}
