package doctor

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/caredash/caredash/internal/platform/upstream"
)

const resource = "doctor"

// Service fetches doctor collections from the upstream platform API and
// normalizes them for the console.
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

// FetchAll returns the normalized collection. When the collection endpoint
// itself is absent upstream (404, as opposed to an empty result) it serves
// the synthetic fallback collection and reports synthetic=true. Any other
// primary-fetch error propagates.
func (s *Service) FetchAll(ctx context.Context, q upstream.Query) ([]*Doctor, bool, error) {
	raws, err := s.up.GetCollection(ctx, resource+"s", "/doctors", q)
	if errors.Is(err, upstream.ErrCollectionMissing) {
		s.log.Warn().Msg("doctors endpoint missing upstream, serving fallback data")
		return GenerateFallback(s.fallbackSeed), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	out := make([]*Doctor, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out, false, nil
}

// FetchOne returns a single normalized doctor. A miss is a NotFoundError
// carrying the message shown to the end user.
func (s *Service) FetchOne(ctx context.Context, id string) (*Doctor, error) {
	raw, err := s.up.GetOne(ctx, resource, "/doctors", id)
	if err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}
