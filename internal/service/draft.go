package service

import (
	"strings"

	"laundry-service/internal/models"
	"laundry-service/internal/pricing"
	"laundry-service/internal/search"

	"github.com/shopspring/decimal"
)

type DraftItem struct {
	ProductType models.ProductType
	Quantity    uint32
	Weight      decimal.Decimal
	SubTotal    decimal.Decimal
}

// Draft - состояние формы приёма заказа до отправки. Позиции можно добавлять и удалять,
// суммы пересчитываются на лету.
type Draft struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Promotion       decimal.Decimal
	Items           []DraftItem
}

func (d *Draft) AddItem(pt models.ProductType, quantity uint32, weight decimal.Decimal) error {
	if quantity == 0 || !weight.IsPositive() {
		return ErrInvalidNumber
	}
	d.Items = append(d.Items, DraftItem{
		ProductType: pt,
		Quantity:    quantity,
		Weight:      weight,
		SubTotal:    pricing.ItemSubtotal(quantity, weight, pt.Price),
	})
	return nil
}

func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrDraftItemIndex
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return nil
}

func (d *Draft) BasePrice() decimal.Decimal {
	subtotals := make([]decimal.Decimal, 0, len(d.Items))
	for _, it := range d.Items {
		subtotals = append(subtotals, it.SubTotal)
	}
	return pricing.OrderBase(subtotals)
}

func (d *Draft) Total() decimal.Decimal {
	return pricing.OrderTotal(d.BasePrice(), d.Promotion)
}

func (d *Draft) Validate() error {
	if err := d.validateCustomer(); err != nil {
		return err
	}
	if len(d.Items) == 0 {
		return ErrEmptyItems
	}
	return pricing.ValidatePromotion(d.Promotion)
}

func (d *Draft) validateCustomer() error {
	if strings.TrimSpace(d.CustomerName) == "" {
		return ErrCustomerNameRequired
	}
	phone := strings.TrimSpace(d.CustomerPhone)
	if phone == "" {
		return ErrPhoneRequired
	}
	if !search.IsPhone(phone) {
		return ErrPhoneInvalid
	}
	if strings.TrimSpace(d.CustomerAddress) == "" {
		return ErrAddressRequired
	}
	return nil
}
