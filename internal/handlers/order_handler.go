package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"laundry-service/internal/bill"
	"laundry-service/internal/dto"
	"laundry-service/internal/middleware"
	"laundry-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	intake   service.IntakeService
	delivery service.DeliveryService
	log      *zap.Logger
}

func NewOrderHandler(intake service.IntakeService, delivery service.DeliveryService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		intake:   intake,
		delivery: delivery,
		log:      log,
	}
}

// ListProductTypes godoc
// @Summary Справочник услуг
// @Description Виды стирки с ценой за кг; при пустой таблице заполняется значениями по умолчанию
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.ProductTypeResponse
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Security BearerAuth
// @Router /api/v1/product-types [get]
func (h *OrderHandler) ListProductTypes(c *gin.Context) {
	list, err := h.intake.ListProductTypes(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "list_product_types", err)
		return
	}

	out := make([]dto.ProductTypeResponse, 0, len(list))
	for _, pt := range list {
		out = append(out, dto.NewProductTypeResponse(pt))
	}
	c.JSON(http.StatusOK, out)
}

// CreateOrder godoc
// @Summary Приём заказа
// @Description Создаёт заказ, считает суммы и возвращает чек для предпросмотра
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Клиент и позиции"
// @Success 201 {object} dto.CreateOrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные данные"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Security BearerAuth
// @Router /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create order request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	in := service.CreateOrderInput{
		CustomerName:    req.CusName,
		CustomerPhone:   req.CusPhone,
		CustomerAddress: req.CusAddress,
		Promotion:       req.Promotion.String(),
		Items:           make([]service.CreateOrderItem, 0, len(req.OrderItems)),
	}
	for i, it := range req.OrderItems {
		id, err := uuid.Parse(strings.TrimSpace(it.ProductID))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product id", []dto.FieldError{
				{Field: fmt.Sprintf("orderItems[%d].Product_ID", i), Message: "must be a uuid"},
			}))
			return
		}
		in.Items = append(in.Items, service.CreateOrderItem{
			ProductTypeID: id,
			Quantity:      it.Quantity.String(),
			Weight:        it.Weight.String(),
		})
	}

	o, err := h.intake.CreateOrder(c.Request.Context(), in)
	middleware.RecordOrderOperation("create", err == nil)
	if err != nil {
		writeError(c, h.log, "create_order", err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Order: dto.NewOrderResponse(o),
		Bill:  bill.Render(o),
	})
}

// Search godoc
// @Summary Поиск заказов
// @Description Одна строка: статус доставки, телефон (10-12 цифр), код ORD-..., иначе точное имя клиента
// @Tags orders
// @Produce json
// @Param q query string true "Строка поиска"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Пустой запрос"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Security BearerAuth
// @Router /api/v1/orders/search [get]
func (h *OrderHandler) Search(c *gin.Context) {
	res, err := h.delivery.Search(c.Request.Context(), c.Query("q"))
	middleware.RecordOrderOperation("search", err == nil)
	if err != nil {
		writeError(c, h.log, "search", err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Dimension: string(res.Query.Dimension),
		Found:     res.Found,
		Orders:    dto.NewOrderListResponse(res.Orders),
	})
}

// ListPending godoc
// @Summary Заказы, ожидающие доставки
// @Tags orders
// @Produce json
// @Success 200 {array} dto.OrderResponse
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Security BearerAuth
// @Router /api/v1/orders/pending [get]
func (h *OrderHandler) ListPending(c *gin.Context) {
	list, err := h.delivery.ListPending(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "list_pending", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderListResponse(list))
}

// GetOrder godoc
// @Summary Заказ по id
// @Tags orders
// @Produce json
// @Param id path string true "ID заказа"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверный id"
// @Failure 404 {object} dto.NotFoundErrorResponse "Заказ не найден"
// @Security BearerAuth
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	o, err := h.delivery.GetOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, "get_order", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(o))
}

// Bill godoc
// @Summary Текстовый чек заказа
// @Tags orders
// @Produce plain
// @Param id path string true "ID заказа"
// @Success 200 {string} string "Чек"
// @Failure 404 {object} dto.NotFoundErrorResponse "Заказ не найден"
// @Security BearerAuth
// @Router /api/v1/orders/{id}/bill [get]
func (h *OrderHandler) Bill(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	o, err := h.delivery.GetOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, "bill", err)
		return
	}
	c.String(http.StatusOK, bill.Render(o))
}

// MarkItemDone godoc
// @Summary Отметить позицию готовой
// @Description Повторная отметка готовой позиции ничего не меняет
// @Tags items
// @Produce json
// @Param id path string true "ID заказа"
// @Param itemId path string true "ID позиции"
// @Success 200 {object} dto.OrderItemResponse
// @Failure 404 {object} dto.NotFoundErrorResponse "Заказ или позиция не найдены"
// @Failure 409 {object} dto.ConflictErrorResponse "Заказ уже доставлен"
// @Security BearerAuth
// @Router /api/v1/orders/{id}/items/{itemId}/done [post]
func (h *OrderHandler) MarkItemDone(c *gin.Context) {
	orderID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.pathUUID(c, "itemId")
	if !ok {
		return
	}

	it, err := h.delivery.MarkItemDone(c.Request.Context(), orderID, itemID)
	middleware.RecordOrderOperation("item_done", err == nil)
	if err != nil {
		writeError(c, h.log, "mark_item_done", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderItemResponse(*it))
}

// CorrectItemWeight godoc
// @Summary Корректировка веса готовой позиции
// @Description Пересчитывает подытог позиции и итог заказа (totalPriceUpdate)
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "ID заказа"
// @Param itemId path string true "ID позиции"
// @Param body body dto.CorrectWeightRequest true "Новый вес"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверный вес"
// @Failure 404 {object} dto.NotFoundErrorResponse "Заказ или позиция не найдены"
// @Failure 409 {object} dto.ConflictErrorResponse "Позиция не готова или заказ доставлен"
// @Security BearerAuth
// @Router /api/v1/orders/{id}/items/{itemId}/weight [put]
func (h *OrderHandler) CorrectItemWeight(c *gin.Context) {
	orderID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.pathUUID(c, "itemId")
	if !ok {
		return
	}
	var req dto.CorrectWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid correct weight request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	o, err := h.delivery.CorrectItemWeight(c.Request.Context(), orderID, itemID, req.Weight.String())
	middleware.RecordOrderOperation("correct_weight", err == nil)
	if err != nil {
		writeError(c, h.log, "correct_item_weight", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(o))
}

// ConfirmDelivery godoc
// @Summary Подтвердить доставку
// @Description Все позиции должны быть готовы; confirmedAmount - сумма «THANH TOÁN»
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "ID заказа"
// @Param body body dto.ConfirmDeliveryRequest true "Подтверждённая сумма"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные данные"
// @Failure 404 {object} dto.NotFoundErrorResponse "Заказ не найден"
// @Failure 409 {object} dto.ConflictErrorResponse "Не все позиции готовы, сумма не совпала или заказ уже доставлен"
// @Security BearerAuth
// @Router /api/v1/orders/{id}/deliver [post]
func (h *OrderHandler) ConfirmDelivery(c *gin.Context) {
	orderID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ConfirmDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid confirm delivery request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	o, err := h.delivery.ConfirmDelivery(c.Request.Context(), orderID, req.ConfirmedAmount.String())
	middleware.RecordOrderOperation("deliver", err == nil)
	if err != nil {
		writeError(c, h.log, "confirm_delivery", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(o))
}

func (h *OrderHandler) pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid "+name, []dto.FieldError{
			{Field: name, Message: "must be a uuid"},
		}))
		return uuid.Nil, false
	}
	return id, true
}
