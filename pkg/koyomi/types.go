package koyomi

// Ko is one micro-season. Each sekki holds exactly three, covering its
// longitude span in equal thirds.
type Ko struct {
	Name    string `json:"name"`
	Reading string `json:"reading"`
	Emoji   string `json:"emoji"`
}

// Sekki is one of the 24 solar terms. Longitude is the apparent solar
// ecliptic longitude in degrees at which the term begins. Terms are stored
// in calendar order starting at 立春 (315°), so the longitude sequence wraps
// past 360°→0° exactly once.
type Sekki struct {
	Name      string  `json:"name"`
	Reading   string  `json:"reading"`
	Longitude float64 `json:"longitude"`
	Ko        []Ko    `json:"ko"`
}

// Position is the resolved place in the calendar for one longitude value.
// It references entries of the Table it was resolved against and is never
// cached or mutated.
type Position struct {
	Sekki   *Sekki
	Ko      *Ko
	KoIndex int
}

// Phase returns the traditional name for the position's kō index.
func (p Position) Phase() string {
	return phaseNames[p.KoIndex]
}

var phaseNames = [3]string{"初候", "次候", "末候"}
