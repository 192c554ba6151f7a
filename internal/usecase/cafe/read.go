package cafe

import (
	"context"

	"github.com/BruksfildServices01/cafe-api/internal/httperr"
	"github.com/BruksfildServices01/cafe-api/internal/models"
)

// GetRandom picks uniformly among the ids currently in the table.
func (s *Service) GetRandom(ctx context.Context) (*models.Cafe, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeEmptyCollection)
	}

	id := ids[s.pick(len(ids))]

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		// removed between the two reads
		return nil, httperr.ErrBusiness(httperr.CodeCafeNotFound)
	}
	return c, nil
}

func (s *Service) GetAll(ctx context.Context) ([]models.Cafe, error) {
	return s.repo.List(ctx)
}

// Search matches location exactly. found is false when no row matched;
// that is not an error.
func (s *Service) Search(
	ctx context.Context,
	location string,
) (cafes []models.Cafe, found bool, err error) {

	cafes, err = s.repo.ListByLocation(ctx, location)
	if err != nil {
		return nil, false, err
	}
	return cafes, len(cafes) > 0, nil
}
