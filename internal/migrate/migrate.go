package migrate

import (
	"context"
	"laundry-service/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto для gen_random_uuid
	CreateChecks           bool // CHECK-constraint для целостности
	CreateIndexes          bool // индексы поиска
	CreateFKsViaSQL        bool // FK через SQL (поверх GORM-constraint)
	CreateUpdatedAtTrigger bool // триггер обновления updated_at
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateFKsViaSQL:        true,
		CreateUpdatedAtTrigger: true,
	}
}

type step struct {
	name string
	sql  string
}

var checkSteps = []step{
	{"orders.delivery", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_delivery_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_delivery_allowed
  CHECK (delivery IN ('Chưa giao hàng','Đã giao hàng'));
`},
	{"orders.promotion", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_promotion_range;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_promotion_range
  CHECK (promotion >= 0 AND promotion <= 100);
`},
	{"orders.prices", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_prices_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_prices_non_negative
  CHECK (base_price >= 0 AND total_price >= 0 AND (total_price_update IS NULL OR total_price_update >= 0));
`},
	{"order_items.status", `
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_status_allowed;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_status_allowed
  CHECK (status IN ('Chưa xong','Đã xong'));
`},
	{"order_items.positive", `
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_positive;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_positive
  CHECK (quantity > 0 AND weight > 0 AND price >= 0 AND (weight_update IS NULL OR weight_update > 0));
`},
	// корректировка веса возможна только у готовой позиции
	{"order_items.correction", `
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_correction_done;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_correction_done
  CHECK (NOT corrected OR (status = 'Đã xong' AND weight_update IS NOT NULL AND sub_total_update IS NOT NULL));
`},
	{"product_types.price", `
ALTER TABLE product_types
  DROP CONSTRAINT IF EXISTS chk_product_types_price_non_negative;
ALTER TABLE product_types
  ADD CONSTRAINT chk_product_types_price_non_negative
  CHECK (price >= 0);
`},
}

var indexSteps = []step{
	{"ix_orders_delivery_created", `
CREATE INDEX IF NOT EXISTS ix_orders_delivery_created
ON orders (delivery, created_at DESC);
`},
	{"ix_orders_phone_created", `
CREATE INDEX IF NOT EXISTS ix_orders_phone_created
ON orders (customer_phone, created_at DESC);
`},
	{"ix_orders_name_created", `
CREATE INDEX IF NOT EXISTS ix_orders_name_created
ON orders (customer_name, created_at DESC);
`},
	{"ix_order_items_order_status", `
CREATE INDEX IF NOT EXISTS ix_order_items_order_status
ON order_items (order_id, status);
`},
}

func MigrateLaundryDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы данных прачечной")
	db = db.WithContext(ctx)

	if opt.CreateExtensions {
		log.Info("Создание расширений PostgreSQL")
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("Не удалось включить расширение pgcrypto", zap.Error(err))
			return err
		}
	}

	log.Info("Создание таблиц product_types, orders, order_items")
	if err := db.AutoMigrate(&models.ProductType{}, &models.Order{}, &models.OrderItem{}); err != nil {
		log.Error("Не удалось создать таблицы", zap.Error(err))
		return err
	}
	log.Info("Таблицы успешно созданы")

	if opt.CreateUpdatedAtTrigger {
		log.Info("Создание триггера updated_at для orders")
		if err := db.Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("Не удалось создать триггер updated_at", zap.Error(err))
			return err
		}
	}

	if opt.CreateChecks {
		log.Info("Создание CHECK-ограничений")
		if err := run(db, log, checkSteps); err != nil {
			return err
		}
	}

	if opt.CreateIndexes {
		log.Info("Создание индексов")
		if err := run(db, log, indexSteps); err != nil {
			return err
		}
	}

	if opt.CreateFKsViaSQL {
		log.Info("Создание внешних ключей")
		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("Не удалось создать FK order_items.order_id -> orders.id", zap.Error(err))
			return err
		}
		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_product_type,
  ADD CONSTRAINT fk_order_items_product_type
    FOREIGN KEY (product_type_id) REFERENCES product_types(id);
`).Error; err != nil {
			log.Error("Не удалось создать FK order_items.product_type_id -> product_types.id", zap.Error(err))
			return err
		}
	}

	log.Info("Миграция базы данных прачечной успешно завершена")
	return nil
}

func run(db *gorm.DB, log *zap.Logger, steps []step) error {
	for _, s := range steps {
		if err := db.Exec(s.sql).Error; err != nil {
			log.Error("Шаг миграции не выполнен", zap.String("step", s.name), zap.Error(err))
			return err
		}
	}
	return nil
}
