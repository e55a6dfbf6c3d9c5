package repository

import (
	"context"
	"errors"
	"laundry-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLookup - поиск по одному полю на равенство. Должно быть задано ровно одно поле.
type OrderLookup struct {
	Code     *string
	Phone    *string
	Name     *string
	Delivery *models.DeliveryStatus
}

type OrderListFilter struct {
	Delivery *models.DeliveryStatus
	Limit    int
	Offset   int
}

var ErrLookupAmbiguous = errors.New("exactly one lookup field must be set")

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Lookup(ctx context.Context, l OrderLookup) ([]*models.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error)
	UpdateTotalUpdate(ctx context.Context, id uuid.UUID, total decimal.Decimal) error
	MarkDelivered(ctx context.Context, id uuid.UUID, deliveryTime string) (bool, error)

	WithTx(ctx context.Context, fn func(txRepo OrderRepo, txItems OrderItemRepo) error) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).Preload("Items", preloadItems).First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) Lookup(ctx context.Context, l OrderLookup) ([]*models.Order, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})

	set := 0
	if l.Code != nil {
		q = q.Where("code = ?", *l.Code)
		set++
	}
	if l.Phone != nil {
		q = q.Where("customer_phone = ?", *l.Phone)
		set++
	}
	if l.Name != nil {
		q = q.Where("customer_name = ?", *l.Name)
		set++
	}
	if l.Delivery != nil {
		q = q.Where("delivery = ?", *l.Delivery)
		set++
	}
	if set != 1 {
		return nil, ErrLookupAmbiguous
	}

	var list []*models.Order
	err := q.Order("created_at DESC").Preload("Items", preloadItems).Find(&list).Error
	return list, err
}

func (r *orderRepo) List(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})

	if f.Delivery != nil {
		q = q.Where("delivery = ?", *f.Delivery)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}

	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []*models.Order
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Preload("Items", preloadItems).Find(&list).Error
	return list, total, err
}

func (r *orderRepo) UpdateTotalUpdate(ctx context.Context, id uuid.UUID, total decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Update("total_price_update", total).Error
}

// MarkDelivered переводит заказ в «доставлен» только из «не доставлен».
// false - заказ уже доставлен или не существует.
func (r *orderRepo) MarkDelivered(ctx context.Context, id uuid.UUID, deliveryTime string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND delivery = ?", id, models.DeliveryPending).
		Updates(map[string]any{
			"delivery":      models.DeliveryDelivered,
			"delivery_time": deliveryTime,
		})
	return tx.RowsAffected > 0, tx.Error
}

func (r *orderRepo) WithTx(ctx context.Context, fn func(txRepo OrderRepo, txItems OrderItemRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepo{db: tx}, &orderItemRepo{db: tx})
	})
}
