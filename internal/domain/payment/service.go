package payment

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/caredash/caredash/internal/platform/upstream"
)

const resource = "payment"

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

// FetchAll returns the normalized payment collection, or the synthetic
// fallback when the endpoint itself is absent upstream.
func (s *Service) FetchAll(ctx context.Context, q upstream.Query) ([]*Payment, bool, error) {
	raws, err := s.up.GetCollection(ctx, resource+"s", "/payments", q)
	if errors.Is(err, upstream.ErrCollectionMissing) {
		s.log.Warn().Msg("payments endpoint missing upstream, serving fallback data")
		return GenerateFallback(s.fallbackSeed), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	out := make([]*Payment, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out, false, nil
}

func (s *Service) FetchOne(ctx context.Context, id string) (*Payment, error) {
	raw, err := s.up.GetOne(ctx, resource, "/payments", id)
	if err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}
