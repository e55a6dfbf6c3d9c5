package service

import (
	"context"

	"laundry-service/internal/models"
	"laundry-service/internal/search"

	"github.com/google/uuid"
)

type CreateOrderItem struct {
	ProductTypeID uuid.UUID
	Quantity      string
	Weight        string
}

// CreateOrderInput - сырой ввод оператора; числа приходят строками и проверяются здесь.
type CreateOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Promotion       string
	Items           []CreateOrderItem
}

// SearchResult - пустой результат поиска не ошибка: Found=false.
type SearchResult struct {
	Query  search.Query
	Orders []models.Order
	Found  bool
}

type IntakeService interface {
	ListProductTypes(ctx context.Context) ([]models.ProductType, error)
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
}

type DeliveryService interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Search(ctx context.Context, term string) (*SearchResult, error)
	ListPending(ctx context.Context) ([]models.Order, error)
	MarkItemDone(ctx context.Context, orderID, itemID uuid.UUID) (*models.OrderItem, error)
	CorrectItemWeight(ctx context.Context, orderID, itemID uuid.UUID, weight string) (*models.Order, error)
	ConfirmDelivery(ctx context.Context, orderID uuid.UUID, confirmedAmount string) (*models.Order, error)
}
