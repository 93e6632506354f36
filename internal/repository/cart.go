package repository

import (
	"context"
	"errors"
	"time"

	"hosting-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCartNotFound = errors.New("cart not found")

type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	var record model.CartRecord
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	var rows []model.CartItemRecord
	err = r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("position asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	cart := &model.Cart{SessionID: sessionID}
	for _, row := range rows {
		item := itemFromRecord(row)
		if item.Type == model.ItemHosting && cart.Hosting == nil {
			cart.Hosting = &item
			continue
		}
		cart.Others = append(cart.Others, item)
	}
	return cart, nil
}

// Save rewrites the whole cart in one transaction. Carts are small so
// delete-and-insert keeps positions trivially consistent.
func (r *cartRepoImpl) Save(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		record := model.CartRecord{SessionID: cart.SessionID, CreatedAt: now, UpdatedAt: now}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).Create(&record).Error; err != nil {
			return err
		}

		if err := tx.Where("session_id = ?", cart.SessionID).
			Delete(&model.CartItemRecord{}).Error; err != nil {
			return err
		}

		items := cart.Items()
		if len(items) == 0 {
			return nil
		}
		rows := make([]model.CartItemRecord, len(items))
		for i, item := range items {
			rows[i] = recordFromItem(cart.SessionID, i, item)
		}
		return tx.Create(&rows).Error
	})
}

func (r *cartRepoImpl) Delete(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).
			Delete(&model.CartItemRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("session_id = ?", sessionID).
			Delete(&model.CartRecord{}).Error
	})
}

func itemFromRecord(row model.CartItemRecord) model.CartItem {
	return model.CartItem{
		ID:          row.ItemID,
		Type:        model.ItemType(row.Type),
		Quantity:    row.Quantity,
		Plan:        model.Plan(row.Plan),
		Term:        model.Term(row.Term),
		Trial:       row.Trial,
		Domain:      row.Domain,
		ProductCode: row.ProductCode,
		Name:        row.Name,
		Description: row.Description,
		PriceCents:  row.PriceCents,
		Interval:    row.Interval,
		Currency:    row.Currency,
	}
}

func recordFromItem(sessionID string, position int, item model.CartItem) model.CartItemRecord {
	return model.CartItemRecord{
		SessionID:   sessionID,
		Position:    position,
		ItemID:      item.ID,
		Type:        string(item.Type),
		Quantity:    item.Quantity,
		Plan:        string(item.Plan),
		Term:        string(item.Term),
		Trial:       item.Trial,
		Domain:      item.Domain,
		ProductCode: item.ProductCode,
		Name:        item.Name,
		Description: item.Description,
		PriceCents:  item.PriceCents,
		Interval:    item.Interval,
		Currency:    item.Currency,
	}
}
