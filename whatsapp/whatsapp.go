// Package whatsapp builds the pre-filled wa.me handoff link the storefront
// opens at checkout. The link is fire-and-forget: nothing here waits for or
// confirms delivery.
package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Line is one order line as rendered into the message. Available is the
// product's stock at checkout time; a requested quantity above it marks the
// line as needing manual confirmation.
type Line struct {
	Name      string
	Code      string
	Quantity  int
	Price     float64
	Available int
}

func (l Line) NeedsConfirmation() bool {
	return l.Quantity > l.Available
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildOrderMessage renders the Arabic order summary sent to the shop's
// WhatsApp number. orderRef is included as a header line when non-empty;
// checkout first persists the order with a ref-less message, then builds the
// final link with the new order's ref.
func BuildOrderMessage(orderRef string, lines []Line, total float64) string {
	var b strings.Builder
	b.WriteString("🛒 *طلب جديد من SOUL*\n")
	if orderRef != "" {
		fmt.Fprintf(&b, "📋 *رقم الطلب: #%s*\n", orderRef)
	}
	b.WriteString("\n*المنتجات:*\n")

	needsConfirmation := false
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s (%s)\n   الكمية المطلوبة: %d\n", i+1, line.Name, line.Code, line.Quantity)
		if line.NeedsConfirmation() {
			needsConfirmation = true
			b.WriteString("   ⚠️ غير متوفر\n")
		}
		fmt.Fprintf(&b, "   السعر: %s جنيه\n   المجموع: %s جنيه\n\n",
			formatAmount(line.Price), formatAmount(line.Price*float64(line.Quantity)))
	}

	fmt.Fprintf(&b, "*المجموع الكلي: %s جنيه*\n\n", formatAmount(total))
	if needsConfirmation {
		b.WriteString("⚠️ *بعض المنتجات تحتاج تأكيد إذا كانت متوفرة*\n\n")
	}
	b.WriteString("يرجى تأكيد الطلب وإرسال معلومات الشحن.")
	return b.String()
}

// OrderLink builds the wa.me deep link that opens a chat with the shop
// pre-filled with the order message.
func OrderLink(number, message string) string {
	u := url.URL{Scheme: "https", Host: "wa.me", Path: "/" + number}
	q := url.Values{}
	q.Set("text", message)
	u.RawQuery = q.Encode()
	return u.String()
}
