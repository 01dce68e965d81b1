package availability

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/caredash/caredash/internal/platform/upstream"
)

const resource = "availability"

type Service struct {
	up           *upstream.Client
	log          zerolog.Logger
	fallbackSeed int64
}

func NewService(up *upstream.Client, log zerolog.Logger, fallbackSeed int64) *Service {
	return &Service{
		up:           up,
		log:          log.With().Str("resource", resource).Logger(),
		fallbackSeed: fallbackSeed,
	}
}

// FetchAll returns a doctor's weekly schedule entries. A doctor filter is
// passed through to the upstream as a query parameter.
func (s *Service) FetchAll(ctx context.Context, q upstream.Query) ([]*Availability, bool, error) {
	raws, err := s.up.GetCollection(ctx, resource, "/availability", q)
	if errors.Is(err, upstream.ErrCollectionMissing) {
		s.log.Warn().Msg("availability endpoint missing upstream, serving fallback data")
		return GenerateFallback(s.fallbackSeed), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	out := make([]*Availability, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out, false, nil
}

func (s *Service) FetchOne(ctx context.Context, id string) (*Availability, error) {
	raw, err := s.up.GetOne(ctx, resource, "/availability", id)
	if err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}
