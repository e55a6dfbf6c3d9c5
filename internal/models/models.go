package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Статус доставки хранится строкой - в том виде, в каком его видит оператор.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "Chưa giao hàng"
	DeliveryDelivered DeliveryStatus = "Đã giao hàng"
)

type ItemStatus string

const (
	ItemPending ItemStatus = "Chưa xong"
	ItemDone    ItemStatus = "Đã xong"
)

type Order struct {
	ID               uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Code             string              `gorm:"type:text;not null;uniqueIndex:ux_orders_code"`
	CustomerName     string              `gorm:"type:text;not null;index"`
	CustomerPhone    string              `gorm:"type:varchar(12);not null;index"`
	CustomerAddress  string              `gorm:"type:text;not null"`
	Promotion        decimal.Decimal     `gorm:"type:numeric;not null;default:0"`
	BasePrice        decimal.Decimal     `gorm:"type:numeric;not null;default:0"`
	TotalPrice       decimal.Decimal     `gorm:"type:numeric;not null;default:0"`
	TotalPriceUpdate decimal.NullDecimal `gorm:"type:numeric"` // NULL до первой корректировки веса
	Delivery         DeliveryStatus      `gorm:"type:text;not null;default:'Chưa giao hàng';index"`
	CreationTime     string              `gorm:"type:text;not null"`
	DeliveryTime     string              `gorm:"type:text;not null;default:''"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

// Payable - сумма к оплате: пересчитанная, если вес корректировали, иначе исходная.
func (o *Order) Payable() decimal.Decimal {
	if o.TotalPriceUpdate.Valid {
		return o.TotalPriceUpdate.Decimal
	}
	return o.TotalPrice
}

func (o *Order) IsDelivered() bool { return o.Delivery == DeliveryDelivered }

type OrderItem struct {
	ID             uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	ProductTypeID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	ProductName    string              `gorm:"type:text;not null"`
	Price          decimal.Decimal     `gorm:"type:numeric;not null"`
	Quantity       uint32              `gorm:"type:int;not null"`
	Weight         decimal.Decimal     `gorm:"type:numeric;not null"`
	SubTotal       decimal.Decimal     `gorm:"type:numeric;not null"`
	Corrected      bool                `gorm:"not null;default:false"`
	WeightUpdate   decimal.NullDecimal `gorm:"type:numeric"`
	SubTotalUpdate decimal.NullDecimal `gorm:"type:numeric"`
	Status         ItemStatus          `gorm:"type:text;not null;default:'Chưa xong'"`
	TimeDone       string              `gorm:"type:text;not null;default:''"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (OrderItem) TableName() string { return "order_items" }

func (i *OrderItem) IsDone() bool { return i.Status == ItemDone }

// EffectiveWeight и EffectiveSubTotal - значения после корректировки, если она была.
func (i *OrderItem) EffectiveWeight() decimal.Decimal {
	if i.Corrected && i.WeightUpdate.Valid {
		return i.WeightUpdate.Decimal
	}
	return i.Weight
}

func (i *OrderItem) EffectiveSubTotal() decimal.Decimal {
	if i.Corrected && i.SubTotalUpdate.Valid {
		return i.SubTotalUpdate.Decimal
	}
	return i.SubTotal
}

type ProductType struct {
	ID    uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name  string          `gorm:"type:text;not null;uniqueIndex:ux_product_types_name"`
	Price decimal.Decimal `gorm:"type:numeric;not null"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (ProductType) TableName() string { return "product_types" }
