package service

import (
	"context"
	"time"

	"laundry-service/internal/models"
)

// Cache - необязательный кэш справочника и списка «ждут доставки».
// Ошибки кэша не должны ломать операцию: реализация логирует и возвращает промах.
type Cache interface {
	GetProductTypes(ctx context.Context) ([]models.ProductType, bool)
	SetProductTypes(ctx context.Context, list []models.ProductType)
	GetPendingOrders(ctx context.Context) ([]models.Order, bool)
	SetPendingOrders(ctx context.Context, list []models.Order)
	InvalidatePendingOrders(ctx context.Context)
}

type noopCache struct{}

func (noopCache) GetProductTypes(context.Context) ([]models.ProductType, bool) { return nil, false }
func (noopCache) SetProductTypes(context.Context, []models.ProductType)        {}
func (noopCache) GetPendingOrders(context.Context) ([]models.Order, bool)      { return nil, false }
func (noopCache) SetPendingOrders(context.Context, []models.Order)             {}
func (noopCache) InvalidatePendingOrders(context.Context)                      {}

// TimeLayout - формат отметок времени заказа: «15:04:05 17/10/2026», как у оператора на экране.
const TimeLayout = "15:04:05 2/1/2006"

type clock struct {
	now func() time.Time
	loc *time.Location
}

func newClock(loc *time.Location) clock {
	if loc == nil {
		loc = time.UTC
	}
	return clock{now: time.Now, loc: loc}
}

func (c clock) stamp() (time.Time, string) {
	t := c.now().In(c.loc)
	return t, t.Format(TimeLayout)
}
