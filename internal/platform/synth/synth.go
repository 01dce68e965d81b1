// Package synth supports the fallback-data path: when a collection endpoint
// is absent upstream, adapters generate synthetic records with a
// deterministic shape and pseudo-random values from a seeded source, so a
// console stays demonstrable without the backend while tests stay
// reproducible.
package synth

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Source wraps a seeded random generator. Not safe for concurrent use; each
// GenerateFallback call builds its own.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a source seeded deterministically.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// ID returns a synthetic record id. It is derived from the source, not
// uuid.New, so a given seed always yields the same ids.
func (s *Source) ID() string {
	var b [16]byte
	s.rng.Read(b[:])
	id, err := uuid.FromBytes(b[:])
	if err != nil {
		return fmt.Sprintf("synthetic-%d", s.rng.Int63())
	}
	return id.String()
}

// Pick returns one element of options.
func (s *Source) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[s.rng.Intn(len(options))]
}

// IntBetween returns an int in [lo, hi].
func (s *Source) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float returns a float64 in [lo, hi) rounded to two decimals.
func (s *Source) Float(lo, hi float64) float64 {
	v := lo + s.rng.Float64()*(hi-lo)
	return float64(int(v*100)) / 100
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.rng.Float64() < p
}

// DateWithin returns a time up to span before ref, truncated to the minute.
func (s *Source) DateWithin(ref time.Time, span time.Duration) time.Time {
	if span <= 0 {
		return ref
	}
	offset := time.Duration(s.rng.Int63n(int64(span)))
	return ref.Add(-offset).Truncate(time.Minute)
}

// FullName composes a person name from the shared pools.
func (s *Source) FullName() string {
	return s.Pick(FirstNames) + " " + s.Pick(LastNames)
}

// Shared value pools for synthetic records.
var (
	FirstNames = []string{
		"Ana", "Bruno", "Carla", "Daniel", "Elena", "Felipe", "Grace",
		"Hassan", "Irene", "Jonas", "Karim", "Laura", "Miguel", "Nadia",
		"Omar", "Priya", "Rafael", "Sofia", "Tomas", "Yara",
	}
	LastNames = []string{
		"Almeida", "Becker", "Costa", "Duarte", "Ferreira", "Gomes",
		"Haddad", "Ibrahim", "Khan", "Lima", "Martins", "Nakamura",
		"Oliveira", "Pereira", "Rocha", "Santos", "Tavares", "Vieira",
	}
	Specialties = []string{
		"Cardiology", "Dermatology", "General Medicine", "Neurology",
		"Orthopedics", "Pediatrics", "Psychiatry", "Radiology",
	}
	Streets = []string{
		"Oak Street", "Maple Avenue", "Cedar Lane", "Elm Road",
		"Pine Court", "Birch Boulevard",
	}
	BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
)
