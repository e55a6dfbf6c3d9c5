package service

import (
	"errors"

	"laundry-service/internal/pricing"
	"laundry-service/internal/search"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrPhoneRequired        = errors.New("customer phone is required")
	ErrPhoneInvalid         = errors.New("phone must be 10-12 digits")
	ErrAddressRequired      = errors.New("customer address is required")
	ErrEmptyItems           = errors.New("order has no items")
	ErrProductTypeNotFound  = errors.New("product type not found")
	ErrDraftItemIndex       = errors.New("draft item index out of range")

	ErrInvalidNumber       = pricing.ErrInvalidNumber
	ErrPromotionOutOfRange = pricing.ErrPromotionOutOfRange
	ErrEmptySearchTerm     = search.ErrEmptyTerm

	ErrOrderNotFound    = errors.New("order not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrItemNotDone      = errors.New("item is not done yet")
	ErrItemsIncomplete  = errors.New("not all items are complete")
	ErrTotalMismatch    = errors.New("confirmed amount does not match order total")
	ErrAlreadyDelivered = errors.New("order already delivered")
)
