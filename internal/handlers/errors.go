package handlers

import (
	"errors"
	"net/http"
	"strings"

	"laundry-service/internal/dto"
	"laundry-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// validation-ошибки сервиса и поле формы, к которому они относятся
var validationErrors = []struct {
	err   error
	field string
}{
	{service.ErrCustomerNameRequired, "cusName"},
	{service.ErrPhoneRequired, "cusPhone"},
	{service.ErrPhoneInvalid, "cusPhone"},
	{service.ErrAddressRequired, "cusAddress"},
	{service.ErrEmptyItems, "orderItems"},
	{service.ErrProductTypeNotFound, "Product_ID"},
	{service.ErrPromotionOutOfRange, "promotion"},
	{service.ErrInvalidNumber, ""},
	{service.ErrEmptySearchTerm, "q"},
}

var conflictErrors = []error{
	service.ErrItemsIncomplete,
	service.ErrItemNotDone,
	service.ErrTotalMismatch,
	service.ErrAlreadyDelivered,
}

var notFoundErrors = []error{
	service.ErrOrderNotFound,
	service.ErrItemNotFound,
}

// writeError переводит ошибку сервиса в HTTP-ответ с BaseError.
func writeError(c *gin.Context, log *zap.Logger, op string, err error) {
	for _, v := range validationErrors {
		if errors.Is(err, v.err) {
			log.Warn("validation failed", zap.String("op", op), zap.Error(err))
			field := v.field
			if field == "" {
				field = wrappedField(err)
			}
			var fields []dto.FieldError
			if field != "" {
				fields = []dto.FieldError{{Field: field, Message: err.Error()}}
			}
			c.JSON(http.StatusBadRequest, dto.NewValidationError(err.Error(), fields))
			return
		}
	}
	for _, e := range notFoundErrors {
		if errors.Is(err, e) {
			log.Warn("not found", zap.String("op", op), zap.Error(err))
			c.JSON(http.StatusNotFound, dto.NewNotFoundError(err.Error()))
			return
		}
	}
	for _, e := range conflictErrors {
		if errors.Is(err, e) {
			log.Warn("rejected", zap.String("op", op), zap.Error(err))
			c.JSON(http.StatusConflict, dto.NewConflictError(err.Error()))
			return
		}
	}

	log.Error("operation failed", zap.String("op", op), zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.NewInternalError(err.Error()))
}

// wrappedField достаёт имя поля из ошибки вида "weight: value must be a positive number".
func wrappedField(err error) string {
	field, _, ok := strings.Cut(err.Error(), ": ")
	if !ok || strings.ContainsAny(field, " :") {
		return ""
	}
	return field
}
