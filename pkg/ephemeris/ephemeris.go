// Package ephemeris computes the Sun's apparent ecliptic longitude. It uses
// the low-accuracy series from Meeus, Astronomical Algorithms ch. 25, which
// is good to roughly a hundredth of a degree — far finer than the 5° width
// of a micro-season. It needs no ephemeris files and keeps no state.
package ephemeris

import (
	"math"
	"time"
)

const (
	// Julian date of the Unix epoch.
	unixEpochJD = 2440587.5
	// Julian date of J2000.0 (2000-01-01 12:00 TT).
	j2000JD        = 2451545.0
	daysPerCentury = 36525.0

	degToRad = math.Pi / 180
)

// Meeus is a solar longitude provider backed by the closed-form series.
// The zero value is ready to use and safe for concurrent use.
type Meeus struct{}

// LongitudeAt returns the Sun's apparent ecliptic longitude in degrees,
// in [0,360), at time t. The error is always nil; it is in the signature so
// providers that consult an external ephemeris can satisfy the same
// interface.
func (Meeus) LongitudeAt(t time.Time) (float64, error) {
	// Julian centuries since J2000.0.
	jd := float64(t.UnixMilli())/86400000.0 + unixEpochJD
	T := (jd - j2000JD) / daysPerCentury

	// Geometric mean longitude and mean anomaly of the Sun.
	L0 := 280.46646 + T*(36000.76983+T*0.0003032)
	M := 357.52911 + T*(35999.05029-T*0.0001537)
	Mr := M * degToRad

	// Equation of center.
	C := (1.914602-T*(0.004817+T*0.000014))*math.Sin(Mr) +
		(0.019993-T*0.000101)*math.Sin(2*Mr) +
		0.000289*math.Sin(3*Mr)

	// True longitude, corrected for nutation and aberration to give the
	// apparent longitude.
	omega := (125.04 - 1934.136*T) * degToRad
	lambda := L0 + C - 0.00569 - 0.00478*math.Sin(omega)

	return normalize(lambda), nil
}

// normalize brings a longitude in degrees into [0,360).
func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
