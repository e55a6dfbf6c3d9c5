package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"laundry-service/internal/models"
	"laundry-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// memStore - хранилище в памяти, поверх которого работают моки репозиториев.
type memStore struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*models.Order
	items  map[uuid.UUID]*models.OrderItem
	types  map[uuid.UUID]models.ProductType
}

func newMemStore() *memStore {
	return &memStore{
		orders: map[uuid.UUID]*models.Order{},
		items:  map[uuid.UUID]*models.OrderItem{},
		types:  map[uuid.UUID]models.ProductType{},
	}
}

func (s *memStore) addType(name string, price int64) models.ProductType {
	s.mu.Lock()
	defer s.mu.Unlock()
	pt := models.ProductType{ID: uuid.New(), Name: name, Price: decimal.NewFromInt(price)}
	s.types[pt.ID] = pt
	return pt
}

func (s *memStore) snapshot(id uuid.UUID) *models.Order {
	o, ok := s.orders[id]
	if !ok {
		return nil
	}
	cp := *o
	cp.Items = nil
	for _, it := range s.sortedItems(id) {
		cp.Items = append(cp.Items, *it)
	}
	return &cp
}

func (s *memStore) sortedItems(orderID uuid.UUID) []*models.OrderItem {
	var out []*models.OrderItem
	for _, it := range s.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// MockOrderRepo
type MockOrderRepo struct {
	store *memStore

	CreateFunc        func(ctx context.Context, o *models.Order) error
	LookupFunc        func(ctx context.Context, l repository.OrderLookup) ([]*models.Order, error)
	MarkDeliveredFunc func(ctx context.Context, id uuid.UUID, deliveryTime string) (bool, error)
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	o.ID = uuid.New()
	cp := *o
	m.store.orders[o.ID] = &cp
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return m.store.snapshot(id), nil
}

func (m *MockOrderRepo) Lookup(ctx context.Context, l repository.OrderLookup) ([]*models.Order, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, l)
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	var out []*models.Order
	for id, o := range m.store.orders {
		switch {
		case l.Code != nil && o.Code == *l.Code,
			l.Phone != nil && o.CustomerPhone == *l.Phone,
			l.Name != nil && o.CustomerName == *l.Name,
			l.Delivery != nil && o.Delivery == *l.Delivery:
			out = append(out, m.store.snapshot(id))
		}
	}
	return out, nil
}

func (m *MockOrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	var out []*models.Order
	for id, o := range m.store.orders {
		if f.Delivery == nil || o.Delivery == *f.Delivery {
			out = append(out, m.store.snapshot(id))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (m *MockOrderRepo) UpdateTotalUpdate(ctx context.Context, id uuid.UUID, total decimal.Decimal) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if o, ok := m.store.orders[id]; ok {
		o.TotalPriceUpdate = decimal.NewNullDecimal(total)
	}
	return nil
}

func (m *MockOrderRepo) MarkDelivered(ctx context.Context, id uuid.UUID, deliveryTime string) (bool, error) {
	if m.MarkDeliveredFunc != nil {
		return m.MarkDeliveredFunc(ctx, id, deliveryTime)
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	o, ok := m.store.orders[id]
	if !ok || o.Delivery != models.DeliveryPending {
		return false, nil
	}
	o.Delivery = models.DeliveryDelivered
	o.DeliveryTime = deliveryTime
	return true, nil
}

func (m *MockOrderRepo) WithTx(ctx context.Context, fn func(txRepo repository.OrderRepo, txItems repository.OrderItemRepo) error) error {
	return fn(m, &MockOrderItemRepo{store: m.store})
}

// MockOrderItemRepo
type MockOrderItemRepo struct {
	store *memStore

	MarkDoneFunc func(ctx context.Context, itemID uuid.UUID, timeDone string) (bool, error)
}

func (m *MockOrderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for i := range items {
		items[i].ID = uuid.New()
		cp := items[i]
		m.store.items[cp.ID] = &cp
	}
	return nil
}

func (m *MockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	var out []models.OrderItem
	for _, it := range m.store.sortedItems(orderID) {
		out = append(out, *it)
	}
	return out, nil
}

func (m *MockOrderItemRepo) GetByID(ctx context.Context, orderID, itemID uuid.UUID) (*models.OrderItem, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	it, ok := m.store.items[itemID]
	if !ok || it.OrderID != orderID {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (m *MockOrderItemRepo) MarkDone(ctx context.Context, itemID uuid.UUID, timeDone string) (bool, error) {
	if m.MarkDoneFunc != nil {
		return m.MarkDoneFunc(ctx, itemID, timeDone)
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	it, ok := m.store.items[itemID]
	if !ok || it.Status != models.ItemPending {
		return false, nil
	}
	it.Status = models.ItemDone
	it.TimeDone = timeDone
	return true, nil
}

func (m *MockOrderItemRepo) UpdateCorrection(ctx context.Context, itemID uuid.UUID, weight, subtotal decimal.Decimal) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if it, ok := m.store.items[itemID]; ok {
		it.Corrected = true
		it.WeightUpdate = decimal.NewNullDecimal(weight)
		it.SubTotalUpdate = decimal.NewNullDecimal(subtotal)
	}
	return nil
}

func (m *MockOrderItemRepo) CountPending(ctx context.Context, orderID uuid.UUID) (int64, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	var n int64
	for _, it := range m.store.sortedItems(orderID) {
		if it.Status == models.ItemPending {
			n++
		}
	}
	return n, nil
}

// MockProductTypeRepo
type MockProductTypeRepo struct {
	store *memStore

	SeedIfEmptyFunc func(ctx context.Context, seed []models.ProductType) (int64, error)
}

func (m *MockProductTypeRepo) List(ctx context.Context) ([]models.ProductType, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	out := make([]models.ProductType, 0, len(m.store.types))
	for _, pt := range m.store.types {
		out = append(out, pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	return out, nil
}

func (m *MockProductTypeRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ProductType, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	var out []models.ProductType
	for _, id := range ids {
		if pt, ok := m.store.types[id]; ok {
			out = append(out, pt)
		}
	}
	return out, nil
}

func (m *MockProductTypeRepo) SeedIfEmpty(ctx context.Context, seed []models.ProductType) (int64, error) {
	if m.SeedIfEmptyFunc != nil {
		return m.SeedIfEmptyFunc(ctx, seed)
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if len(m.store.types) > 0 {
		return 0, nil
	}
	for _, pt := range seed {
		pt.ID = uuid.New()
		m.store.types[pt.ID] = pt
	}
	return int64(len(seed)), nil
}

// MockEventBus
type MockEventBus struct {
	mu        sync.Mutex
	Created   []OrderCreatedEvent
	Corrected []ItemCorrectedEvent
	Delivered []OrderDeliveredEvent
	Err       error
}

func (m *MockEventBus) PublishOrderCreated(_ context.Context, e OrderCreatedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, e)
	return m.Err
}

func (m *MockEventBus) PublishItemCorrected(_ context.Context, e ItemCorrectedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Corrected = append(m.Corrected, e)
	return m.Err
}

func (m *MockEventBus) PublishOrderDelivered(_ context.Context, e OrderDeliveredEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Delivered = append(m.Delivered, e)
	return m.Err
}

// MockCache хранит список «ждут доставки» в памяти и считает инвалидации.
type MockCache struct {
	noopCache
	pending       []models.Order
	Invalidations int
}

func (m *MockCache) GetPendingOrders(context.Context) ([]models.Order, bool) {
	return m.pending, m.pending != nil
}

func (m *MockCache) SetPendingOrders(_ context.Context, list []models.Order) {
	m.pending = list
	if m.pending == nil {
		m.pending = []models.Order{}
	}
}

func (m *MockCache) InvalidatePendingOrders(context.Context) {
	m.pending = nil
	m.Invalidations++
}

type fixture struct {
	store    *memStore
	repo     *repository.Repository
	orders   *MockOrderRepo
	items    *MockOrderItemRepo
	types    *MockProductTypeRepo
	events   *MockEventBus
	cache    *MockCache
	intake   *intakeService
	delivery *deliveryService
}

var fixedNow = time.Date(2026, 10, 17, 9, 5, 3, 0, time.UTC)

func newFixture() *fixture {
	st := newMemStore()
	f := &fixture{
		store:  st,
		orders: &MockOrderRepo{store: st},
		items:  &MockOrderItemRepo{store: st},
		types:  &MockProductTypeRepo{store: st},
		events: &MockEventBus{},
		cache:  &MockCache{},
	}
	f.repo = &repository.Repository{Orders: f.orders, OrderItems: f.items, ProductTypes: f.types}

	f.intake = NewIntakeService(f.repo, f.cache, f.events, time.UTC, zap.NewNop()).(*intakeService)
	f.delivery = NewDeliveryService(f.repo, f.cache, f.events, time.UTC, zap.NewNop()).(*deliveryService)

	tick := fixedNow
	now := func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	f.intake.clock.now = now
	f.delivery.clock.now = now
	return f
}
