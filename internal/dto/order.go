package dto

import (
	"encoding/json"

	"laundry-service/internal/models"
	"laundry-service/internal/pricing"

	"github.com/shopspring/decimal"
)

// Имена JSON-полей совпадают с записями, которые уже читает мобильное приложение.

type ProductTypeResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price" swaggertype:"number"`
}

type CreateOrderItemRequest struct {
	ProductID string      `json:"Product_ID" example:"6f1c1f0e-3b7a-4f7e-9d2c-1a2b3c4d5e6f"`
	Quantity  json.Number `json:"quantity" swaggertype:"number" example:"1"`
	Weight    json.Number `json:"weight" swaggertype:"number" example:"5"`
}

type CreateOrderRequest struct {
	CusName    string                   `json:"cusName" example:"Nguyen Van A"`
	CusPhone   string                   `json:"cusPhone" example:"0901234567"`
	CusAddress string                   `json:"cusAddress" example:"12 Le Loi"`
	Promotion  json.Number              `json:"promotion" swaggertype:"number" example:"10"`
	OrderItems []CreateOrderItemRequest `json:"orderItems"`
}

type CreateOrderResponse struct {
	Order OrderResponse `json:"order"`
	Bill  string        `json:"bill"`
}

type OrderItemResponse struct {
	ID             string       `json:"id"`
	ProductID      string       `json:"Product_ID"`
	ProductName    string       `json:"ProductName"`
	Quantity       uint32       `json:"quantity"`
	Price          json.Number  `json:"price" swaggertype:"number"`
	Weight         json.Number  `json:"weight" swaggertype:"number"`
	WeightUpdate   *json.Number `json:"weightUpdate" swaggertype:"number"`
	SubTotal       json.Number  `json:"subTotal" swaggertype:"number"`
	SubTotalUpdate *json.Number `json:"subTotalUpdate" swaggertype:"number"`
	Corrected      bool         `json:"corrected"`
	Status         string       `json:"status"`
	TimeDone       string       `json:"timeDone"`
}

type OrderResponse struct {
	ID               string              `json:"id"`
	OrderID          string              `json:"order_id"`
	CusName          string              `json:"cusName"`
	CusPhone         string              `json:"cusPhone"`
	CusAddress       string              `json:"cusAddress"`
	BasePrice        json.Number         `json:"basePrice" swaggertype:"number"`
	TotalPrice       json.Number         `json:"totalPrice" swaggertype:"number"`
	TotalPriceUpdate *json.Number        `json:"totalPriceUpdate" swaggertype:"number"`
	Promotion        json.Number         `json:"promotion" swaggertype:"number"`
	Payable          json.Number         `json:"payable" swaggertype:"number"`
	Delivery         string              `json:"Delivery"`
	CreationTime     string              `json:"creationTime"`
	DeliveryTime     string              `json:"DeliveryTime"`
	OrderItems       []OrderItemResponse `json:"orderItems"`
}

type SearchResponse struct {
	Dimension string          `json:"dimension"`
	Found     bool            `json:"found"`
	Orders    []OrderResponse `json:"orders"`
}

type CorrectWeightRequest struct {
	Weight json.Number `json:"weight" swaggertype:"number" example:"6"`
}

type ConfirmDeliveryRequest struct {
	ConfirmedAmount json.Number `json:"confirmedAmount" swaggertype:"number" example:"175000"`
}

func num(d decimal.Decimal) json.Number { return json.Number(d.String()) }

func nullNum(d decimal.NullDecimal) *json.Number {
	if !d.Valid {
		return nil
	}
	n := num(d.Decimal)
	return &n
}

func NewProductTypeResponse(pt models.ProductType) ProductTypeResponse {
	return ProductTypeResponse{ID: pt.ID.String(), Name: pt.Name, Price: num(pt.Price)}
}

func NewOrderItemResponse(it models.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:             it.ID.String(),
		ProductID:      it.ProductTypeID.String(),
		ProductName:    it.ProductName,
		Quantity:       it.Quantity,
		Price:          num(it.Price),
		Weight:         num(it.Weight),
		WeightUpdate:   nullNum(it.WeightUpdate),
		SubTotal:       num(it.SubTotal),
		SubTotalUpdate: nullNum(it.SubTotalUpdate),
		Corrected:      it.Corrected,
		Status:         string(it.Status),
		TimeDone:       it.TimeDone,
	}
}

// NewOrderResponse; payable - сумма «THANH TOÁN», уже округлённая вниз до тысячи.
func NewOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, NewOrderItemResponse(it))
	}
	return OrderResponse{
		ID:               o.ID.String(),
		OrderID:          o.Code,
		CusName:          o.CustomerName,
		CusPhone:         o.CustomerPhone,
		CusAddress:       o.CustomerAddress,
		BasePrice:        num(o.BasePrice),
		TotalPrice:       num(o.TotalPrice),
		TotalPriceUpdate: nullNum(o.TotalPriceUpdate),
		Promotion:        num(o.Promotion),
		Payable:          num(pricing.RoundPayable(o.Payable())),
		Delivery:         string(o.Delivery),
		CreationTime:     o.CreationTime,
		DeliveryTime:     o.DeliveryTime,
		OrderItems:       items,
	}
}

func NewOrderListResponse(list []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for i := range list {
		out = append(out, NewOrderResponse(&list[i]))
	}
	return out
}
