package repository

import (
	"context"
	"time"

	"hosting-storefront/internal/model"

	"gorm.io/gorm"
)

type CheckoutRepository interface {
	Create(ctx context.Context, record *model.CheckoutRecord) error
	FindByID(ctx context.Context, id string) (*model.CheckoutRecord, error)
	MarkFailed(ctx context.Context, id string) error
}

type checkoutRepoImpl struct {
	db *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) CheckoutRepository {
	return &checkoutRepoImpl{
		db: db,
	}
}

func (r *checkoutRepoImpl) Create(ctx context.Context, record *model.CheckoutRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *checkoutRepoImpl) FindByID(ctx context.Context, id string) (*model.CheckoutRecord, error) {
	var record model.CheckoutRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error

	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *checkoutRepoImpl) MarkFailed(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.CheckoutRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     "FAILED",
			"updated_at": time.Now(),
		}).Error
}
