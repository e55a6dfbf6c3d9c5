package service

import (
	"context"
	"fmt"
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

// PendingListLimit - сколько недоставленных заказов отдаёт экран доставки.
const PendingListLimit = 200

type deliveryService struct {
	repo   *repository.Repository
	cache  Cache
	events EventBus
	clock  clock
	log    *zap.Logger
}

func NewDeliveryService(repo *repository.Repository, cache Cache, events EventBus, loc *time.Location, log *zap.Logger) DeliveryService {
	if cache == nil {
		cache = noopCache{}
	}
	return &deliveryService{
		repo:   repo,
		cache:  cache,
		events: events,
		clock:  newClock(loc),
		log:    log,
	}
}

func (s *deliveryService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	o, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *deliveryService) Search(ctx context.Context, term string) (*SearchResult, error) {
	q, err := search.Classify(term)
	if err != nil {
		return nil, err
	}

	var lookup repository.OrderLookup
	switch q.Dimension {
	case search.DimensionStatus:
		st := q.Status
		lookup.Delivery = &st
	case search.DimensionPhone:
		lookup.Phone = &q.Value
	case search.DimensionCode:
		lookup.Code = &q.Value
	default:
		lookup.Name = &q.Value
	}

	list, err := s.repo.Orders.Lookup(ctx, lookup)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}

	orders := derefOrders(list)
	s.log.Debug("search",
		zap.String("dimension", string(q.Dimension)),
		zap.String("value", q.Value),
		zap.Int("found", len(orders)),
	)
	return &SearchResult{Query: q, Orders: orders, Found: len(orders) > 0}, nil
}

func (s *deliveryService) ListPending(ctx context.Context) ([]models.Order, error) {
	if list, ok := s.cache.GetPendingOrders(ctx); ok {
		return list, nil
	}

	st := models.DeliveryPending
	list, _, err := s.repo.Orders.List(ctx, repository.OrderListFilter{
		Delivery: &st,
		Limit:    PendingListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	orders := derefOrders(list)
	s.cache.SetPendingOrders(ctx, orders)
	return orders, nil
}

func (s *deliveryService) MarkItemDone(ctx context.Context, orderID, itemID uuid.UUID) (*models.OrderItem, error) {
	if _, err := s.openOrder(ctx, s.repo.Orders, orderID); err != nil {
		return nil, err
	}

	item, err := s.repo.OrderItems.GetByID(ctx, orderID, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.IsDone() {
		return item, nil
	}

	_, stamp := s.clock.stamp()
	changed, err := s.repo.OrderItems.MarkDone(ctx, itemID, stamp)
	if err != nil {
		return nil, fmt.Errorf("mark item done: %w", err)
	}
	if changed {
		item.Status = models.ItemDone
		item.TimeDone = stamp
		s.cache.InvalidatePendingOrders(ctx)
		s.log.Info("item done",
			zap.String("operator", operatorField(ctx)),
			zap.String("order_id", orderID.String()),
			zap.String("item_id", itemID.String()),
		)
		return item, nil
	}

	// гонка с другим оператором: возвращаем актуальное состояние
	item, err = s.repo.OrderItems.GetByID(ctx, orderID, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *deliveryService) CorrectItemWeight(ctx context.Context, orderID, itemID uuid.UUID, rawWeight string) (*models.Order, error) {
	weight, err := pricing.ParsePositive("weight", rawWeight)
	if err != nil {
		return nil, err
	}

	var (
		order    *models.Order
		item     *models.OrderItem
		subtotal decimal.Decimal
		total    decimal.Decimal
	)
	err = s.repo.Orders.WithTx(ctx, func(or repository.OrderRepo, ir repository.OrderItemRepo) error {
		o, err := s.openOrder(ctx, or, orderID)
		if err != nil {
			return err
		}

		it, err := ir.GetByID(ctx, orderID, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if it == nil {
			return ErrItemNotFound
		}
		if !it.IsDone() {
			return ErrItemNotDone
		}

		subtotal = pricing.ItemSubtotal(it.Quantity, weight, it.Price)
		if err := ir.UpdateCorrection(ctx, itemID, weight, subtotal); err != nil {
			return fmt.Errorf("update correction: %w", err)
		}

		items, err := ir.GetByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("reload items: %w", err)
		}
		_, total = pricing.RecomputeOrderTotal(effectiveLines(items), o.Promotion)
		if err := or.UpdateTotalUpdate(ctx, orderID, total); err != nil {
			return fmt.Errorf("update total: %w", err)
		}

		order, item = o, it
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.cache.InvalidatePendingOrders(ctx)

	s.log.Info("item weight corrected",
		zap.String("operator", operatorField(ctx)),
		zap.String("code", order.Code),
		zap.String("item_id", itemID.String()),
		zap.String("weight", weight.String()),
		zap.String("total_price_update", total.String()),
	)

	if s.events != nil {
		err := s.events.PublishItemCorrected(ctx, ItemCorrectedEvent{
			OrderID:          orderID,
			Code:             order.Code,
			ItemID:           itemID,
			Weight:           item.Weight,
			WeightUpdate:     weight,
			SubTotalUpdate:   subtotal,
			TotalPriceUpdate: total,
		})
		if err != nil {
			s.log.Warn("publish item corrected failed", zap.String("code", order.Code), zap.Error(err))
		}
	}

	return s.GetOrder(ctx, orderID)
}

// ConfirmDelivery проверяет по порядку: заказ существует, не доставлен, все позиции готовы,
// сумма совпадает. Любой отказ ничего не меняет.
func (s *deliveryService) ConfirmDelivery(ctx context.Context, orderID uuid.UUID, confirmedAmount string) (*models.Order, error) {
	order, err := s.openOrder(ctx, s.repo.Orders, orderID)
	if err != nil {
		return nil, err
	}

	pending, err := s.repo.OrderItems.CountPending(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("count pending items: %w", err)
	}
	if pending > 0 {
		return nil, ErrItemsIncomplete
	}

	payable := order.Payable()
	if !AmountMatches(confirmedAmount, payable) {
		return nil, ErrTotalMismatch
	}

	_, stamp := s.clock.stamp()
	ok, err := s.repo.Orders.MarkDelivered(ctx, orderID, stamp)
	if err != nil {
		return nil, fmt.Errorf("mark delivered: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyDelivered
	}

	s.cache.InvalidatePendingOrders(ctx)
	s.log.Info("order delivered",
		zap.String("operator", operatorField(ctx)),
		zap.String("code", order.Code),
		zap.String("payable", payable.String()),
	)

	if s.events != nil {
		err := s.events.PublishOrderDelivered(ctx, OrderDeliveredEvent{
			OrderID:      orderID,
			Code:         order.Code,
			Payable:      pricing.RoundPayable(payable),
			DeliveryTime: stamp,
		})
		if err != nil {
			s.log.Warn("publish order delivered failed", zap.String("code", order.Code), zap.Error(err))
		}
	}

	order.Delivery = models.DeliveryDelivered
	order.DeliveryTime = stamp
	return order, nil
}

// AmountMatches: оператор подтверждает округлённую сумму «THANH TOÁN»; точная сумма тоже принимается.
func AmountMatches(raw string, payable decimal.Decimal) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return amount.Equal(pricing.RoundPayable(payable)) || amount.Equal(payable)
}

func (s *deliveryService) openOrder(ctx context.Context, or repository.OrderRepo, id uuid.UUID) (*models.Order, error) {
	o, err := or.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if o.IsDelivered() {
		return nil, ErrAlreadyDelivered
	}
	return o, nil
}

func effectiveLines(items []models.OrderItem) []pricing.Line {
	lines := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		if it.Corrected {
			lines = append(lines, pricing.Corrected(it.EffectiveSubTotal()))
			continue
		}
		lines = append(lines, pricing.Original(it.SubTotal))
	}
	return lines
}

func derefOrders(list []*models.Order) []models.Order {
	out := make([]models.Order, 0, len(list))
	for _, o := range list {
		if o != nil {
			out = append(out, *o)
		}
	}
	return out
}
