package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"laundry-service/internal/models"
	"laundry-service/internal/pricing"
	"laundry-service/internal/repository"
	"laundry-service/internal/search"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultProductTypes - справочник услуг, которым заполняется пустая таблица.
var DefaultProductTypes = []models.ProductType{
	{Name: "Giặt thường", Price: decimal.NewFromInt(15000)},
	{Name: "Giặt nhanh", Price: decimal.NewFromInt(20000)},
	{Name: "Giặt sấy", Price: decimal.NewFromInt(25000)},
	{Name: "Giặt chăn mền", Price: decimal.NewFromInt(30000)},
	{Name: "Giặt cao cấp", Price: decimal.NewFromInt(40000)},
}

type intakeService struct {
	repo   *repository.Repository
	cache  Cache
	events EventBus
	clock  clock
	log    *zap.Logger
}

func NewIntakeService(repo *repository.Repository, cache Cache, events EventBus, loc *time.Location, log *zap.Logger) IntakeService {
	if cache == nil {
		cache = noopCache{}
	}
	return &intakeService{
		repo:   repo,
		cache:  cache,
		events: events,
		clock:  newClock(loc),
		log:    log,
	}
}

func (s *intakeService) ListProductTypes(ctx context.Context) ([]models.ProductType, error) {
	if list, ok := s.cache.GetProductTypes(ctx); ok {
		return list, nil
	}

	list, err := s.repo.ProductTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	if len(list) == 0 {
		n, err := s.repo.ProductTypes.SeedIfEmpty(ctx, DefaultProductTypes)
		if err != nil {
			return nil, fmt.Errorf("seed product types: %w", err)
		}
		s.log.Info("product types seeded", zap.Int64("inserted", n))

		if list, err = s.repo.ProductTypes.List(ctx); err != nil {
			return nil, fmt.Errorf("list product types: %w", err)
		}
	}

	s.cache.SetProductTypes(ctx, list)
	return list, nil
}

func (s *intakeService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	draft, err := s.buildDraft(ctx, in)
	if err != nil {
		return nil, err
	}

	now, stamp := s.clock.stamp()
	base := draft.BasePrice()
	order := &models.Order{
		Code:            newOrderCode(now),
		CustomerName:    strings.TrimSpace(draft.CustomerName),
		CustomerPhone:   strings.TrimSpace(draft.CustomerPhone),
		CustomerAddress: strings.TrimSpace(draft.CustomerAddress),
		Promotion:       draft.Promotion,
		BasePrice:       base,
		TotalPrice:      draft.Total(),
		Delivery:        models.DeliveryPending,
		CreationTime:    stamp,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	itemsDB := make([]models.OrderItem, 0, len(draft.Items))
	for i, it := range draft.Items {
		itemsDB = append(itemsDB, models.OrderItem{
			ProductTypeID: it.ProductType.ID,
			ProductName:   it.ProductType.Name,
			Price:         it.ProductType.Price,
			Quantity:      it.Quantity,
			Weight:        it.Weight,
			SubTotal:      it.SubTotal,
			Status:        models.ItemPending,
			// порядок позиций сохраняется через created_at
			CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
		})
	}

	err = s.repo.Orders.WithTx(ctx, func(or repository.OrderRepo, ir repository.OrderItemRepo) error {
		if err := or.Create(ctx, order); err != nil {
			return err
		}
		for i := range itemsDB {
			itemsDB[i].OrderID = order.ID
		}
		if err := ir.BulkCreate(ctx, itemsDB); err != nil {
			return err
		}

		created, err := or.GetByID(ctx, order.ID)
		if err != nil {
			return err
		}
		if created != nil {
			order = created
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.cache.InvalidatePendingOrders(ctx)
	s.publishCreated(ctx, order)

	s.log.Info("order created",
		zap.String("operator", operatorField(ctx)),
		zap.String("code", order.Code),
		zap.String("base_price", order.BasePrice.String()),
		zap.String("total_price", order.TotalPrice.String()),
		zap.Int("items", len(order.Items)),
	)
	return order, nil
}

// buildDraft проверяет ввод в порядке формы приёма: клиент, позиции, скидка.
func (s *intakeService) buildDraft(ctx context.Context, in CreateOrderInput) (*Draft, error) {
	draft := &Draft{
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
	}
	if err := draft.validateCustomer(); err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}

	types, err := s.resolveProductTypes(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	for _, it := range in.Items {
		qty, err := parseQuantity(it.Quantity)
		if err != nil {
			return nil, err
		}
		weight, err := pricing.ParsePositive("weight", it.Weight)
		if err != nil {
			return nil, err
		}
		if err := draft.AddItem(types[it.ProductTypeID], qty, weight); err != nil {
			return nil, err
		}
	}

	if draft.Promotion, err = pricing.ParsePromotion(in.Promotion); err != nil {
		return nil, err
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *intakeService) resolveProductTypes(ctx context.Context, items []CreateOrderItem) (map[uuid.UUID]models.ProductType, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if it.ProductTypeID == uuid.Nil {
			return nil, ErrProductTypeNotFound
		}
		ids = append(ids, it.ProductTypeID)
	}

	list, err := s.repo.ProductTypes.BatchGetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load product types: %w", err)
	}

	byID := make(map[uuid.UUID]models.ProductType, len(list))
	for _, pt := range list {
		byID[pt.ID] = pt
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductTypeNotFound, id)
		}
	}
	return byID, nil
}

func (s *intakeService) publishCreated(ctx context.Context, o *models.Order) {
	if s.events == nil {
		return
	}
	evItems := make([]OrderItemEvent, 0, len(o.Items))
	for _, it := range o.Items {
		evItems = append(evItems, OrderItemEvent{
			ProductTypeID: it.ProductTypeID,
			ProductName:   it.ProductName,
			Quantity:      it.Quantity,
			Weight:        it.Weight,
			Price:         it.Price,
			SubTotal:      it.SubTotal,
		})
	}
	err := s.events.PublishOrderCreated(ctx, OrderCreatedEvent{
		OrderID:      o.ID,
		Code:         o.Code,
		CustomerName: o.CustomerName,
		Phone:        o.CustomerPhone,
		Items:        evItems,
		BasePrice:    o.BasePrice,
		Promotion:    o.Promotion,
		TotalPrice:   o.TotalPrice,
		CreationTime: o.CreationTime,
	})
	if err != nil {
		s.log.Warn("publish order created failed", zap.String("code", o.Code), zap.Error(err))
	}
}

// newOrderCode: "ORD-" + миллисекунды. Уникальность держится на часах и unique-индексе.
func newOrderCode(now time.Time) string {
	return search.OrderCodePrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

func parseQuantity(raw string) (uint32, error) {
	q, err := pricing.ParsePositive("quantity", raw)
	if err != nil {
		return 0, err
	}
	if !q.IsInteger() || q.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, fmt.Errorf("quantity: %w", ErrInvalidNumber)
	}
	return uint32(q.IntPart()), nil
}
