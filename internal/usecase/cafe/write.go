package cafe

import (
	"context"
	"crypto/subtle"

	"github.com/BruksfildServices01/cafe-api/internal/httperr"
	"github.com/BruksfildServices01/cafe-api/internal/models"
)

func (s *Service) Add(ctx context.Context, in Fields) (*models.Cafe, error) {
	c, err := buildCafe(in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateFull overwrites every mutable column. The id never changes.
func (s *Service) UpdateFull(
	ctx context.Context,
	id uint,
	in Fields,
) (*models.Cafe, error) {

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, httperr.ErrBusiness(httperr.CodeCafeNotFound)
	}

	next, err := buildCafe(in)
	if err != nil {
		return nil, err
	}
	next.ID = current.ID

	if err := s.repo.Update(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// UpdatePrice stores price as given; nil clears it.
func (s *Service) UpdatePrice(
	ctx context.Context,
	id uint,
	price *string,
) (*models.Cafe, error) {

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, httperr.ErrBusiness(httperr.CodeCafeNotFound)
	}

	c.CoffeePrice = price

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete checks the credential before the row lookup.
func (s *Service) Delete(
	ctx context.Context,
	id uint,
	credential string,
) error {

	if subtle.ConstantTimeCompare([]byte(credential), []byte(s.apiKey)) != 1 {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return httperr.ErrBusiness(httperr.CodeCafeNotFound)
	}

	return s.repo.Delete(ctx, id)
}
