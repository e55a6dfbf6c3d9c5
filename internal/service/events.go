package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemEvent struct {
	ProductTypeID uuid.UUID       `json:"product_type_id"`
	ProductName   string          `json:"product_name"`
	Quantity      uint32          `json:"quantity"`
	Weight        decimal.Decimal `json:"weight"`
	Price         decimal.Decimal `json:"price"`
	SubTotal      decimal.Decimal `json:"sub_total"`
}

type OrderCreatedEvent struct {
	OrderID      uuid.UUID        `json:"order_id"`
	Code         string           `json:"code"`
	CustomerName string           `json:"customer_name"`
	Phone        string           `json:"phone"`
	Items        []OrderItemEvent `json:"items"`
	BasePrice    decimal.Decimal  `json:"base_price"`
	Promotion    decimal.Decimal  `json:"promotion"`
	TotalPrice   decimal.Decimal  `json:"total_price"`
	CreationTime string           `json:"creation_time"`
}

type ItemCorrectedEvent struct {
	OrderID          uuid.UUID       `json:"order_id"`
	Code             string          `json:"code"`
	ItemID           uuid.UUID       `json:"item_id"`
	Weight           decimal.Decimal `json:"weight"`
	WeightUpdate     decimal.Decimal `json:"weight_update"`
	SubTotalUpdate   decimal.Decimal `json:"sub_total_update"`
	TotalPriceUpdate decimal.Decimal `json:"total_price_update"`
}

type OrderDeliveredEvent struct {
	OrderID      uuid.UUID       `json:"order_id"`
	Code         string          `json:"code"`
	Payable      decimal.Decimal `json:"payable"`
	DeliveryTime string          `json:"delivery_time"`
}

type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishItemCorrected(ctx context.Context, e ItemCorrectedEvent) error
	PublishOrderDelivered(ctx context.Context, e OrderDeliveredEvent) error
}
