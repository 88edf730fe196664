// Package timetricks holds small calendar-day helpers shared by the caches
// and the sun-time lookups.
package timetricks

import (
	"time"
)

const dayFormat = "20060102"

// SameDay reports whether two times fall on the same calendar day, each in
// its own location.
func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

// TrimClock strips the wall-clock component of t, leaving midnight of its
// calendar day.
func TrimClock(t time.Time) time.Time {
	h, m, s := t.Clock()
	return t.Add(-1 *
		(time.Duration(h)*time.Hour +
			time.Duration(m)*time.Minute +
			time.Duration(s)*time.Second))
}

// UniqueDay returns a string representation of t that is unique by the day.
// Two separate times on the same calendar day return identical strings.
func UniqueDay(t time.Time) string {
	return t.Format(dayFormat)
}
