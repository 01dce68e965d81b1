package patient

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/caredash/caredash/internal/platform/upstream"
)

const resource = "patient"

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

// FetchAll returns the normalized patient collection, or the synthetic
// fallback when the endpoint itself is absent upstream.
func (s *Service) FetchAll(ctx context.Context, q upstream.Query) ([]*Patient, bool, error) {
	raws, err := s.up.GetCollection(ctx, resource+"s", "/patients", q)
	if errors.Is(err, upstream.ErrCollectionMissing) {
		s.log.Warn().Msg("patients endpoint missing upstream, serving fallback data")
		return GenerateFallback(s.fallbackSeed), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	out := make([]*Patient, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out, false, nil
}

func (s *Service) FetchOne(ctx context.Context, id string) (*Patient, error) {
	raw, err := s.up.GetOne(ctx, resource, "/patients", id)
	if err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}
