package bill_test

import (
	"strings"
	"testing"

	"laundry-service/internal/bill"
	"laundry-service/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func order() *models.Order {
	return &models.Order{
		Code:          "ORD-1760691903000",
		CustomerName:  "Nguyen Van A",
		CustomerPhone: "0901234567",
		CreationTime:  "09:05:03 17/10/2026",
		Promotion:     decimal.NewFromInt(10),
		BasePrice:     decimal.NewFromInt(195000),
		TotalPrice:    decimal.NewFromInt(175500),
		Items: []models.OrderItem{
			{ProductName: "Giặt thường", Quantity: 1, Weight: decimal.NewFromInt(5), Price: decimal.NewFromInt(15000), SubTotal: decimal.NewFromInt(75000)},
			{ProductName: "Giặt nhanh", Quantity: 2, Weight: decimal.NewFromInt(3), Price: decimal.NewFromInt(20000), SubTotal: decimal.NewFromInt(120000)},
		},
	}
}

func TestRender(t *testing.T) {
	out := bill.Render(order())

	for _, want := range []string{
		"GIẶT SẤY",
		"BUZZ WASH",
		"Khách hàng: Nguyen Van A",
		"SĐT: 0901234567",
		"Ngày tạo: 09:05:03 17/10/2026",
		"GIẶT THƯỜNG",
		"1 | 5kg | 15.000 | 75.000",
		"2 | 3kg | 20.000 | 120.000",
		"Tổng tiền: 195.000 đ",
		"Khuyến mãi (10%): -19.500 đ",
		"THANH TOÁN: 175.000 đ",
		"(Đã làm tròn)",
		"Tích lũy 10 tem giặt 5kg cho lần giặt tiếp theo",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_NoPromotionLine(t *testing.T) {
	o := order()
	o.Promotion = decimal.Zero
	o.TotalPrice = decimal.NewFromInt(195000)

	out := bill.Render(o)
	assert.False(t, strings.Contains(out, "Khuyến mãi"))
	assert.Contains(t, out, "THANH TOÁN: 195.000 đ")
}

func TestRender_CorrectedItem(t *testing.T) {
	o := order()
	o.Items[0].Corrected = true
	o.Items[0].WeightUpdate = decimal.NewNullDecimal(decimal.NewFromInt(6))
	o.Items[0].SubTotalUpdate = decimal.NewNullDecimal(decimal.NewFromInt(90000))
	o.TotalPriceUpdate = decimal.NewNullDecimal(decimal.NewFromInt(189000))

	out := bill.Render(o)
	assert.Contains(t, out, "GIẶT THƯỜNG (cân lại)")
	assert.False(t, strings.Contains(out, "GIẶT NHANH (cân lại)"))
	assert.Contains(t, out, "1 | 6kg | 15.000 | 90.000")
	assert.Contains(t, out, "Tổng tiền: 210.000 đ")
	assert.Contains(t, out, "THANH TOÁN: 189.000 đ")
}

func TestRender_UsesStoredTotals(t *testing.T) {
	o := order()
	o.Items = o.Items[:1]

	out := bill.Render(o)
	assert.Contains(t, out, "Tổng tiền: 195.000 đ")
	assert.Contains(t, out, "Khuyến mãi (10%): -19.500 đ")
	assert.Contains(t, out, "THANH TOÁN: 175.000 đ")
}

func TestRender_PayableFollowsStoredCorrection(t *testing.T) {
	o := order()
	o.TotalPriceUpdate = decimal.NewNullDecimal(decimal.NewFromInt(189500))

	out := bill.Render(o)
	assert.Contains(t, out, "THANH TOÁN: 189.000 đ")
}
