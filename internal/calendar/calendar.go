// Package calendar does day-granularity date math in a fixed location.
package calendar

import (
	"time"
)

// Clock supplies "now".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Calendar compares and shifts dates at day granularity in Location.
type Calendar struct {
	Location *time.Location
}

// New returns a Calendar for loc; nil means UTC.
func New(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{Location: loc}
}

// Load resolves an IANA zone name ("" is UTC).
func Load(name string) (Calendar, error) {
	if name == "" {
		return New(time.UTC), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Calendar{}, err
	}
	return New(loc), nil
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Day truncates t to midnight of its calendar day.
func (c Calendar) Day(t time.Time) time.Time {
	y, m, d := t.In(c.loc()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc())
}

// AddDays shifts t by n calendar days, keeping time of day.
func (c Calendar) AddDays(t time.Time, n int) time.Time {
	return t.In(c.loc()).AddDate(0, 0, n)
}

// Contains reports whether day(start) <= day(t) <= day(end).
func (c Calendar) Contains(start, end, t time.Time) bool {
	d := c.Day(t)
	return !d.Before(c.Day(start)) && !d.After(c.Day(end))
}

// Ordered reports whether day(start) <= day(end).
func (c Calendar) Ordered(start, end time.Time) bool {
	return !c.Day(start).After(c.Day(end))
}
