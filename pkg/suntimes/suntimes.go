// Package suntimes computes sunrise and sunset for a fixed place, used to
// garnish the daily post and the API payload.
package suntimes

import (
	"time"

	"github.com/carrotRakko/koyomi-bot/pkg/timetricks"

	"github.com/keep94/sunrise"
)

// Place is a lat/long coordinate on the Earth matched with its time zone.
type Place struct {
	Lat, Long float64
	Location  *time.Location
}

var (
	Tokyo = Place{
		35.6762, 139.6503,
		locationOrPanic("Asia/Tokyo"),
	}
)

// Daylight returns sunrise and sunset on the calendar day of t in the
// place's zone, expressed in that zone.
func Daylight(t time.Time, place Place) (rise, set time.Time) {
	day := t.In(place.Location)
	// Anchor at local noon so Around picks the sunrise of this calendar
	// day, not a neighbor's.
	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, place.Location)

	var s sunrise.Sunrise
	s.Around(place.Lat, place.Long, noon)

	// The sunrise package is not very clean with its dates; make sure we
	// really landed on the right one.
	if !timetricks.SameDay(day, s.Sunrise().In(place.Location)) {
		s.AddDays(1)
	}

	return s.Sunrise().In(place.Location), s.Sunset().In(place.Location)
}

func locationOrPanic(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
