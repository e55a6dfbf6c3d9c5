package repository

import (
	"context"
	"errors"
	"laundry-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItemRepo interface {
	BulkCreate(ctx context.Context, items []models.OrderItem) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	GetByID(ctx context.Context, orderID, itemID uuid.UUID) (*models.OrderItem, error)
	MarkDone(ctx context.Context, itemID uuid.UUID, timeDone string) (bool, error)
	UpdateCorrection(ctx context.Context, itemID uuid.UUID, weight, subtotal decimal.Decimal) error
	CountPending(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type orderItemRepo struct{ db *gorm.DB }

func NewOrderItemRepo(db *gorm.DB) OrderItemRepo { return &orderItemRepo{db: db} }

func (r *orderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *orderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	var rows []models.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at ASC").Find(&rows).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return rows, err
}

func (r *orderItemRepo) GetByID(ctx context.Context, orderID, itemID uuid.UUID) (*models.OrderItem, error) {
	var it models.OrderItem
	err := r.db.WithContext(ctx).First(&it, "id = ? AND order_id = ?", itemID, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &it, err
}

// MarkDone: pending -> done. false - позиция уже была готова.
func (r *orderItemRepo) MarkDone(ctx context.Context, itemID uuid.UUID, timeDone string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&models.OrderItem{}).
		Where("id = ? AND status = ?", itemID, models.ItemPending).
		Updates(map[string]any{
			"status":    models.ItemDone,
			"time_done": timeDone,
		})
	return tx.RowsAffected > 0, tx.Error
}

func (r *orderItemRepo) UpdateCorrection(ctx context.Context, itemID uuid.UUID, weight, subtotal decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&models.OrderItem{}).Where("id = ?", itemID).Updates(map[string]any{
		"corrected":        true,
		"weight_update":    weight,
		"sub_total_update": subtotal,
	}).Error
}

func (r *orderItemRepo) CountPending(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.OrderItem{}).
		Where("order_id = ? AND status = ?", orderID, models.ItemPending).
		Count(&cnt).Error
	return cnt, err
}
