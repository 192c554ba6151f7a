package cafe

import (
	"context"

	"github.com/BruksfildServices01/cafe-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Cafe) error

	// GetByID returns (nil, nil) when no row has that id.
	GetByID(ctx context.Context, id uint) (*models.Cafe, error)

	List(ctx context.Context) ([]models.Cafe, error)
	ListByLocation(ctx context.Context, location string) ([]models.Cafe, error)
	ListIDs(ctx context.Context) ([]uint, error)
	Count(ctx context.Context) (int64, error)

	Update(ctx context.Context, c *models.Cafe) error
	Delete(ctx context.Context, id uint) error
}
