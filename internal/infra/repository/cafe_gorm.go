package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/cafe-api/internal/domain/cafe"
	"github.com/BruksfildServices01/cafe-api/internal/httperr"
	"github.com/BruksfildServices01/cafe-api/internal/models"
)

type CafeGormRepository struct {
	db *gorm.DB
}

func NewCafeGormRepository(db *gorm.DB) *CafeGormRepository {
	return &CafeGormRepository{db: db}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *CafeGormRepository) Create(
	ctx context.Context,
	c *models.Cafe,
) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrField(httperr.CodeDuplicateName, "name")
		}
		return errors.Wrap(err, "create cafe")
	}
	return nil
}

func (r *CafeGormRepository) Update(
	ctx context.Context,
	c *models.Cafe,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Cafe{}).
		Where("id = ?", c.ID).
		Select("*").
		Omit("id").
		Updates(c)
	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			return httperr.ErrField(httperr.CodeDuplicateName, "name")
		}
		return errors.Wrapf(res.Error, "update cafe %d", c.ID)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeCafeNotFound)
	}
	return nil
}

func (r *CafeGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Cafe{}, id)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete cafe %d", id)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeCafeNotFound)
	}
	return nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *CafeGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Cafe, error) {

	if id == 0 {
		return nil, nil
	}

	var c models.Cafe
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get cafe %d", id)
	}
	return &c, nil
}

func (r *CafeGormRepository) List(
	ctx context.Context,
) ([]models.Cafe, error) {

	var cafes []models.Cafe
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&cafes).Error; err != nil {
		return nil, errors.Wrap(err, "list cafes")
	}
	return cafes, nil
}

func (r *CafeGormRepository) ListByLocation(
	ctx context.Context,
	location string,
) ([]models.Cafe, error) {

	var cafes []models.Cafe
	if err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("id ASC").
		Find(&cafes).Error; err != nil {
		return nil, errors.Wrap(err, "list cafes by location")
	}
	return cafes, nil
}

func (r *CafeGormRepository) ListIDs(
	ctx context.Context,
) ([]uint, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Cafe{}).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "list cafe ids")
	}
	return ids, nil
}

func (r *CafeGormRepository) Count(
	ctx context.Context,
) (int64, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Cafe{}).
		Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count cafes")
	}
	return n, nil
}

// Compile-time check
var _ domain.Repository = (*CafeGormRepository)(nil)
