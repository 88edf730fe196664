package koyomi

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoMatch reports that no sekki interval contained the longitude. On a
// table that passed LoadFrom validation this is unreachable; it exists so a
// table bug surfaces as a diagnosable error instead of a silent default.
var ErrNoMatch = errors.New("no sekki matched longitude")

// Resolve maps an apparent solar ecliptic longitude in degrees to the active
// sekki and kō. The longitude is normalized into [0,360) by mod 360 first;
// NaN and infinities are rejected. A sekki is active on the half-open
// interval [start, nextStart), with the single wrapping term covering both
// the top of the circle and the sliver past 0°.
func (t *Table) Resolve(longitude float64) (Position, error) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return Position{}, fmt.Errorf("longitude %v is not finite", longitude)
	}
	lon := math.Mod(longitude, 360)
	if lon < 0 {
		lon += 360
	}

	n := len(t.sekki)
	for i := range t.sekki {
		s := &t.sekki[i]
		next := t.sekki[(i+1)%n].Longitude
		if s.Longitude > next {
			// The one term whose span crosses 360°→0°.
			if lon >= s.Longitude || lon < next {
				return position(s, next, lon), nil
			}
		} else if s.Longitude <= lon && lon < next {
			return position(s, next, lon), nil
		}
	}
	return Position{}, fmt.Errorf("%w: %.4f°", ErrNoMatch, lon)
}

// position picks the kō within the active sekki by splitting its span into
// three equal sub-ranges.
func position(s *Sekki, next, lon float64) Position {
	var span, offset float64
	if s.Longitude > next {
		span = (360 - s.Longitude) + next
		if lon >= s.Longitude {
			offset = lon - s.Longitude
		} else {
			offset = (360 - s.Longitude) + lon
		}
	} else {
		span = next - s.Longitude
		offset = lon - s.Longitude
	}

	i := int(offset / (span / koPerSekki))
	// Rounding at the very top of the span can push the index to 3.
	if i > koPerSekki-1 {
		i = koPerSekki - 1
	}
	return Position{Sekki: s, Ko: &s.Ko[i], KoIndex: i}
}
