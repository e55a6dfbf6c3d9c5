package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"laundry-service/internal/migrate"
	"laundry-service/internal/models"
	"laundry-service/internal/repository"
	"laundry-service/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.SetupTestPostgres(t)
	if err := migrate.MigrateLaundryDB(context.Background(), db, zap.NewNop(), migrate.DefaultMigrateOptions()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var seed = []models.ProductType{
	{Name: "Giặt thường", Price: decimal.NewFromInt(15000)},
	{Name: "Giặt nhanh", Price: decimal.NewFromInt(20000)},
}

func createOrder(t *testing.T, repos *repository.Repository, code, phone string, pt models.ProductType) *models.Order {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	ord := &models.Order{
		Code:            code,
		CustomerName:    "Nguyen Van A",
		CustomerPhone:   phone,
		CustomerAddress: "12 Le Loi",
		Promotion:       decimal.NewFromInt(10),
		BasePrice:       decimal.NewFromInt(195000),
		TotalPrice:      decimal.NewFromInt(175500),
		Delivery:        models.DeliveryPending,
		CreationTime:    "09:05:03 17/10/2026",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	err := repos.Orders.WithTx(ctx, func(or repository.OrderRepo, ir repository.OrderItemRepo) error {
		if err := or.Create(ctx, ord); err != nil {
			return err
		}
		return ir.BulkCreate(ctx, []models.OrderItem{
			{OrderID: ord.ID, ProductTypeID: pt.ID, ProductName: pt.Name, Price: pt.Price, Quantity: 1,
				Weight: decimal.NewFromInt(5), SubTotal: decimal.NewFromInt(75000), Status: models.ItemPending, CreatedAt: now},
			{OrderID: ord.ID, ProductTypeID: pt.ID, ProductName: pt.Name, Price: pt.Price, Quantity: 2,
				Weight: decimal.NewFromInt(3), SubTotal: decimal.NewFromInt(90000), Status: models.ItemPending, CreatedAt: now.Add(time.Millisecond)},
		})
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return ord
}

func TestProductTypeRepo_Seed(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewProductTypeRepo(db)
	ctx := context.Background()

	n, err := repo.SeedIfEmpty(ctx, seed)
	if err != nil || n != 2 {
		t.Fatalf("SeedIfEmpty: n=%d err=%v", n, err)
	}
	n, err = repo.SeedIfEmpty(ctx, seed)
	if err != nil || n != 0 {
		t.Fatalf("second SeedIfEmpty must be a no-op: n=%d err=%v", n, err)
	}

	list, err := repo.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("List: %v %v", list, err)
	}
	if list[0].Name != "Giặt thường" {
		t.Fatalf("List must be ordered by price: %+v", list)
	}

	got, err := repo.BatchGetByIDs(ctx, []uuid.UUID{list[1].ID, uuid.New()})
	if err != nil || len(got) != 1 || got[0].ID != list[1].ID {
		t.Fatalf("BatchGetByIDs: %v %v", got, err)
	}
}

func TestOrderRepo_CreateLookupList(t *testing.T) {
	db := setupDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	if _, err := repos.ProductTypes.SeedIfEmpty(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	pts, _ := repos.ProductTypes.List(ctx)

	a := createOrder(t, repos, "ORD-1", "0901234567", pts[0])
	createOrder(t, repos, "ORD-2", "0901234567", pts[1])

	got, err := repos.Orders.GetByID(ctx, a.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: %v %v", got, err)
	}
	if len(got.Items) != 2 || got.Items[0].Quantity != 1 {
		t.Fatalf("items must be preloaded in insertion order: %+v", got.Items)
	}
	if got.TotalPriceUpdate.Valid {
		t.Fatalf("TotalPriceUpdate must be NULL before any correction")
	}

	missing, err := repos.Orders.GetByID(ctx, uuid.New())
	if err != nil || missing != nil {
		t.Fatalf("GetByID(missing): %v %v", missing, err)
	}

	code := "ORD-1"
	list, err := repos.Orders.Lookup(ctx, repository.OrderLookup{Code: &code})
	if err != nil || len(list) != 1 || len(list[0].Items) != 2 {
		t.Fatalf("Lookup by code: %v %v", list, err)
	}

	phone := "0901234567"
	list, err = repos.Orders.Lookup(ctx, repository.OrderLookup{Phone: &phone})
	if err != nil || len(list) != 2 {
		t.Fatalf("Lookup by phone: %v %v", list, err)
	}

	name := "Nguyen"
	list, err = repos.Orders.Lookup(ctx, repository.OrderLookup{Name: &name})
	if err != nil || len(list) != 0 {
		t.Fatalf("Lookup by partial name must be empty: %v %v", list, err)
	}

	if _, err := repos.Orders.Lookup(ctx, repository.OrderLookup{Code: &code, Phone: &phone}); !errors.Is(err, repository.ErrLookupAmbiguous) {
		t.Fatalf("two fields must be rejected, got %v", err)
	}

	dup := &models.Order{Code: "ORD-1", CustomerName: "x", CustomerPhone: "0900000000", CustomerAddress: "x", CreationTime: "x"}
	if err := repos.Orders.Create(ctx, dup); err == nil {
		t.Fatalf("duplicate code must violate unique index")
	}

	pending := models.DeliveryPending
	all, total, err := repos.Orders.List(ctx, repository.OrderListFilter{Delivery: &pending, Limit: 1})
	if err != nil || total != 2 || len(all) != 1 {
		t.Fatalf("List: total=%d len=%d err=%v", total, len(all), err)
	}
}

func TestOrderItemRepo_DoneCorrectDeliver(t *testing.T) {
	db := setupDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	if _, err := repos.ProductTypes.SeedIfEmpty(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	pts, _ := repos.ProductTypes.List(ctx)
	ord := createOrder(t, repos, "ORD-3", "0901234567", pts[0])

	items, err := repos.OrderItems.GetByOrderID(ctx, ord.ID)
	if err != nil || len(items) != 2 {
		t.Fatalf("GetByOrderID: %v %v", items, err)
	}
	first := items[0]

	if _, err := repos.OrderItems.GetByID(ctx, uuid.New(), first.ID); err != nil {
		t.Fatalf("GetByID(other order): %v", err)
	}
	if it, _ := repos.OrderItems.GetByID(ctx, uuid.New(), first.ID); it != nil {
		t.Fatalf("item must belong to the order")
	}

	// коррекция до готовности запрещена CHECK-ограничением
	if err := repos.OrderItems.UpdateCorrection(ctx, first.ID, decimal.NewFromInt(6), decimal.NewFromInt(90000)); err == nil {
		t.Fatalf("correction of a pending item must violate the check constraint")
	}

	ok, err := repos.OrderItems.MarkDone(ctx, first.ID, "10:00:00 17/10/2026")
	if err != nil || !ok {
		t.Fatalf("MarkDone: ok=%v err=%v", ok, err)
	}
	ok, err = repos.OrderItems.MarkDone(ctx, first.ID, "10:00:01 17/10/2026")
	if err != nil || ok {
		t.Fatalf("second MarkDone must not change anything: ok=%v err=%v", ok, err)
	}

	cnt, err := repos.OrderItems.CountPending(ctx, ord.ID)
	if err != nil || cnt != 1 {
		t.Fatalf("CountPending: %d %v", cnt, err)
	}

	if err := repos.OrderItems.UpdateCorrection(ctx, first.ID, decimal.NewFromInt(6), decimal.NewFromInt(90000)); err != nil {
		t.Fatalf("UpdateCorrection: %v", err)
	}
	if err := repos.Orders.UpdateTotalUpdate(ctx, ord.ID, decimal.NewFromInt(162000)); err != nil {
		t.Fatalf("UpdateTotalUpdate: %v", err)
	}

	got, _ := repos.Orders.GetByID(ctx, ord.ID)
	if !got.TotalPriceUpdate.Valid || !got.TotalPriceUpdate.Decimal.Equal(decimal.NewFromInt(162000)) {
		t.Fatalf("TotalPriceUpdate mismatch: %+v", got.TotalPriceUpdate)
	}
	it := got.Items[0]
	if !it.Corrected || !it.WeightUpdate.Decimal.Equal(decimal.NewFromInt(6)) || !it.Weight.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("correction mismatch: %+v", it)
	}

	delivered, err := repos.Orders.MarkDelivered(ctx, ord.ID, "11:00:00 17/10/2026")
	if err != nil || !delivered {
		t.Fatalf("MarkDelivered: %v %v", delivered, err)
	}
	delivered, err = repos.Orders.MarkDelivered(ctx, ord.ID, "11:00:01 17/10/2026")
	if err != nil || delivered {
		t.Fatalf("MarkDelivered is one-way: %v %v", delivered, err)
	}
	got, _ = repos.Orders.GetByID(ctx, ord.ID)
	if got.Delivery != models.DeliveryDelivered || got.DeliveryTime != "11:00:00 17/10/2026" {
		t.Fatalf("delivery mismatch: %+v", got)
	}
}
