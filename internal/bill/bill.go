// Package bill печатает текстовый чек заказа.
package bill

import (
	"strings"

	"laundry-service/internal/models"
	"laundry-service/internal/pricing"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	ShopTitle    = "GIẶT SẤY"
	ShopSubtitle = "BUZZ WASH"

	ruler         = "---------------------------------------------------"
	correctedMark = "(cân lại)"
)

var footer = []string{
	"Chân thành cảm ơn quý khách đã tin tưởng và ủng hộ",
	"Tích lũy 10 tem giặt 5kg cho lần giặt tiếp theo",
}

// Render возвращает чек: шапка, клиент, позиции, итоги и «THANH TOÁN», округлённое вниз до тысячи.
// Итоги берутся из сохранённого заказа. Для откорректированных позиций печатаются новые вес и подытог.
func Render(o *models.Order) string {
	p := message.NewPrinter(language.Vietnamese)
	var b strings.Builder

	b.WriteString(ShopTitle + "\n")
	b.WriteString(ShopSubtitle + "\n")
	p.Fprintf(&b, "Mã đơn: %s\n", o.Code)
	p.Fprintf(&b, "Khách hàng: %s\n", o.CustomerName)
	p.Fprintf(&b, "SĐT: %s\n", o.CustomerPhone)
	p.Fprintf(&b, "Ngày tạo: %s\n", o.CreationTime)
	b.WriteString(ruler + "\n")
	b.WriteString("SL | T.Lượng | Giá bán | T.Tiền\n")
	b.WriteString(ruler + "\n")

	lines := make([]pricing.Line, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		line := pricing.Original(it.SubTotal)
		if it.Corrected {
			line = pricing.Corrected(it.EffectiveSubTotal())
		}
		lines = append(lines, line)

		name := strings.ToUpper(it.ProductName)
		if line.IsCorrected() {
			name += " " + correctedMark
		}
		b.WriteString(name + "\n")
		p.Fprintf(&b, "%d | %skg | %s | %s\n",
			it.Quantity, it.EffectiveWeight().String(), money(p, it.Price), money(p, line.Subtotal()))
	}
	b.WriteString(ruler + "\n")

	base := o.BasePrice
	if o.TotalPriceUpdate.Valid {
		// сохранённый TotalPriceUpdate посчитан от действующих подытогов
		base, _ = pricing.RecomputeOrderTotal(lines, o.Promotion)
	}
	p.Fprintf(&b, "Tổng tiền: %s đ\n", money(p, base))
	if o.Promotion.IsPositive() {
		discount := base.Mul(o.Promotion.Shift(-2))
		p.Fprintf(&b, "Khuyến mãi (%s%%): -%s đ\n", o.Promotion.String(), money(p, discount))
	}
	p.Fprintf(&b, "THANH TOÁN: %s đ\n", money(p, pricing.RoundPayable(o.Payable())))
	b.WriteString("(Đã làm tròn)\n")
	b.WriteString(ruler + "\n")
	for _, l := range footer {
		b.WriteString(l + "\n")
	}
	return b.String()
}

// money форматирует сумму в đồng с разделением тысяч точкой: 175.500.
func money(p *message.Printer, d decimal.Decimal) string {
	return p.Sprintf("%d", d.Round(0).IntPart())
}
