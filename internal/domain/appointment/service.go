package appointment

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/caredash/caredash/internal/platform/upstream"
)

const resource = "appointment"

// PatientSource resolves patient summaries for enrichment.
type PatientSource interface {
	Summary(ctx context.Context, id string) (PersonSummary, error)
}

// DoctorSource resolves doctor summaries for enrichment.
type DoctorSource interface {
	Summary(ctx context.Context, id string) (PersonSummary, error)
}

// Service fetches appointments and enriches each record with its patient
// and doctor summaries. Enrichment sub-fetches run concurrently under a
// configured bound; a failed sub-fetch degrades only its own record.
type Service struct {
	up           *upstream.Client
	patients     PatientSource
	doctors      DoctorSource
	log          zerolog.Logger
	enrichLimit  int
	fallbackSeed int64
}

func NewService(up *upstream.Client, patients PatientSource, doctors DoctorSource, log zerolog.Logger, enrichLimit int, fallbackSeed int64) *Service {
	if enrichLimit <= 0 {
		enrichLimit = 8
	}
	return &Service{
		up:           up,
		patients:     patients,
		doctors:      doctors,
		log:          log.With().Str("resource", resource).Logger(),
		enrichLimit:  enrichLimit,
		fallbackSeed: fallbackSeed,
	}
}

// FetchAll returns the normalized, enriched collection, or the synthetic
// fallback when the endpoint itself is absent upstream.
func (s *Service) FetchAll(ctx context.Context, q upstream.Query) ([]*Appointment, bool, error) {
	raws, err := s.up.GetCollection(ctx, resource+"s", "/appointments", q)
	if errors.Is(err, upstream.ErrCollectionMissing) {
		s.log.Warn().Msg("appointments endpoint missing upstream, serving fallback data")
		return GenerateFallback(s.fallbackSeed), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	related := s.enrich(ctx, raws)

	out := make([]*Appointment, 0, len(raws))
	for i, raw := range raws {
		out = append(out, Normalize(raw, related[i]))
	}
	return out, false, nil
}

// FetchOne returns a single enriched appointment.
func (s *Service) FetchOne(ctx context.Context, id string) (*Appointment, error) {
	raw, err := s.up.GetOne(ctx, resource, "/appointments", id)
	if err != nil {
		return nil, err
	}
	related := s.enrich(ctx, []map[string]any{raw})
	return Normalize(raw, related[0]), nil
}

// enrich resolves patient and doctor summaries for every raw record. The
// fan-out is bounded by enrichLimit; each lookup writes only its own slot,
// and every failure is absorbed into a stub so sibling records are never
// blocked or failed.
func (s *Service) enrich(ctx context.Context, raws []map[string]any) []Related {
	related := make([]Related, len(raws))

	g := new(errgroup.Group)
	g.SetLimit(s.enrichLimit)

	for i, raw := range raws {
		i, raw := i, raw

		pid := PatientID(raw)
		if name := EmbeddedPatientName(raw); name != "" {
			related[i].Patient = PersonSummary{ID: pid, Name: name}
		} else if pid == "" {
			related[i].Patient = PersonSummary{Name: UnknownPatient}
		} else {
			g.Go(func() error {
				sum, err := s.patients.Summary(ctx, pid)
				if err != nil {
					e := &upstream.EnrichmentError{Resource: "patient", ID: pid, Err: err}
					s.log.Warn().Err(e).Msg("enrichment fetch failed, substituting stub")
					sum = PersonSummary{ID: pid, Name: UnknownPatient}
				}
				related[i].Patient = sum
				return nil
			})
		}

		did := DoctorID(raw)
		if name := EmbeddedDoctorName(raw); name != "" {
			related[i].Doctor = PersonSummary{ID: did, Name: name}
		} else if did == "" {
			related[i].Doctor = PersonSummary{Name: UnknownDoctor}
		} else {
			g.Go(func() error {
				sum, err := s.doctors.Summary(ctx, did)
				if err != nil {
					e := &upstream.EnrichmentError{Resource: "doctor", ID: did, Err: err}
					s.log.Warn().Err(e).Msg("enrichment fetch failed, substituting stub")
					sum = PersonSummary{ID: did, Name: UnknownDoctor}
				}
				related[i].Doctor = sum
				return nil
			})
		}
	}

	// Lookups never return errors; Wait only synchronizes the fan-out.
	_ = g.Wait()
	return related
}
