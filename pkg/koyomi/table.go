package koyomi

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	numSekki   = 24
	koPerSekki = 3
)

// ErrBadTable reports that the backing data is missing, malformed, or
// violates the 24-term/3-kō structure. Returned wrapped by Load and LoadFrom.
var ErrBadTable = errors.New("malformed sekki table")

//go:embed data/sekki.json
var sekkiJSON []byte

// Table is the validated, immutable set of 24 sekki. Load it once and share
// it freely; resolution never mutates it.
type Table struct {
	sekki []Sekki
}

type tableDoc struct {
	Sekki []Sekki `json:"sekki"`
}

// Load returns the embedded reference table.
func Load() (*Table, error) {
	return LoadFrom(bytes.NewReader(sekkiJSON))
}

// LoadFrom decodes and validates a sekki table from r. The structural
// invariants are checked eagerly here so Resolve can assume a well-formed
// table: exactly 24 sekki in calendar order, 3 kō each, start longitudes
// finite in [0,360), and exactly one wraparound in the cyclic order.
func LoadFrom(r io.Reader) (*Table, error) {
	var doc tableDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}
	if got := len(doc.Sekki); got != numSekki {
		return nil, fmt.Errorf("%w: want %d sekki, got %d", ErrBadTable, numSekki, got)
	}
	wraps := 0
	for i := range doc.Sekki {
		s := &doc.Sekki[i]
		if s.Name == "" {
			return nil, fmt.Errorf("%w: sekki %d has no name", ErrBadTable, i)
		}
		if math.IsNaN(s.Longitude) || s.Longitude < 0 || s.Longitude >= 360 {
			return nil, fmt.Errorf("%w: %s starts at %v°, outside [0,360)", ErrBadTable, s.Name, s.Longitude)
		}
		if got := len(s.Ko); got != koPerSekki {
			return nil, fmt.Errorf("%w: %s has %d kō, want %d", ErrBadTable, s.Name, got, koPerSekki)
		}
		for j, k := range s.Ko {
			if k.Name == "" {
				return nil, fmt.Errorf("%w: %s kō %d has no name", ErrBadTable, s.Name, j)
			}
		}
		if s.Longitude > doc.Sekki[(i+1)%numSekki].Longitude {
			wraps++
		}
	}
	if wraps != 1 {
		return nil, fmt.Errorf("%w: %d wraparound boundaries, want exactly 1", ErrBadTable, wraps)
	}
	return &Table{sekki: doc.Sekki}, nil
}

// Sekki returns the terms in calendar order. Callers must not modify the
// returned slice.
func (t *Table) Sekki() []Sekki {
	return t.sekki
}

// Len returns the number of terms, always 24 for a loaded table.
func (t *Table) Len() int {
	return len(t.sekki)
}
