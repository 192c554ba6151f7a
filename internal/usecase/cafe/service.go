package cafe

import (
	"math/rand/v2"

	domain "github.com/BruksfildServices01/cafe-api/internal/domain/cafe"
)

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo   domain.Repository
	apiKey string
	pick   func(n int) int
}

type Option func(*Service)

// WithPicker replaces the source of random indexes used by GetRandom.
// pick(n) must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) {
		s.pick = pick
	}
}

func NewService(
	repo domain.Repository,
	apiKey string,
	opts ...Option,
) *Service {
	s := &Service{
		repo:   repo,
		apiKey: apiKey,
		pick:   rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
