package suntimes

import (
	"testing"
	"time"

	"github.com/carrotRakko/koyomi-bot/pkg/timetricks"
)

func TestDaylightTokyo(t *testing.T) {
	table := []time.Time{
		time.Date(2024, time.February, 4, 7, 0, 0, 0, Tokyo.Location),
		time.Date(2024, time.June, 21, 0, 0, 0, 0, Tokyo.Location),
		time.Date(2024, time.December, 21, 23, 30, 0, 0, Tokyo.Location),
	}

	for _, day := range table {
		rise, set := Daylight(day, Tokyo)

		if !rise.Before(set) {
			t.Errorf("Daylight(%v): rise %v not before set %v", day, rise, set)
		}
		if !timetricks.SameDay(day, rise) {
			t.Errorf("Daylight(%v): rise %v on wrong day", day, rise)
		}
		if !timetricks.SameDay(day, set) {
			t.Errorf("Daylight(%v): set %v on wrong day", day, set)
		}

		// Tokyo daylight runs roughly 9.5 to 14.5 hours over the year.
		if d := set.Sub(rise); d < 9*time.Hour || d > 15*time.Hour {
			t.Errorf("Daylight(%v): day length %v out of range", day, d)
		}
	}
}
