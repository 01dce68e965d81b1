package notification

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/caredash/caredash/internal/platform/upstream"
)

const resource = "notification"

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

func (s *Service) FetchAll(ctx context.Context, q upstream.Query) ([]*Notification, bool, error) {
	raws, err := s.up.GetCollection(ctx, resource+"s", "/notifications", q)
	if errors.Is(err, upstream.ErrCollectionMissing) {
		s.log.Warn().Msg("notifications endpoint missing upstream, serving fallback data")
		return GenerateFallback(s.fallbackSeed), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	out := make([]*Notification, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out, false, nil
}

func (s *Service) FetchOne(ctx context.Context, id string) (*Notification, error) {
	raw, err := s.up.GetOne(ctx, resource, "/notifications", id)
	if err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}
