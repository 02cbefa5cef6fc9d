package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"streetwear/internal/models"
)

// The storefront has no payment gateway: checkout hands the order off to
// a WhatsApp conversation with a pre-filled itemized message. The admin
// confirms and advances the order status manually afterwards.

// OrderMessage renders the pre-filled checkout message: one line per cart
// line plus the grand total, in the shop's Turkish house format.
func OrderMessage(lines []models.CartLine, total float64) string {
	var b strings.Builder
	b.WriteString("Merhaba! Sipariş vermek istiyorum:\n\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "- %s (%s) x%d - ₺%s\n", l.Name, l.SelectedSize, l.Quantity, formatAmount(l.Subtotal()))
	}
	fmt.Fprintf(&b, "\nToplam Tutar: ₺%s", formatAmount(total))
	return b.String()
}

// CheckoutLink builds the wa.me deep link that opens a chat with the shop
// number and the message pre-filled.
func CheckoutLink(number string, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// formatAmount renders a price in the tr-TR style the storefront shows:
// dot thousands separator, comma decimals, decimals dropped when whole.
func formatAmount(v float64) string {
	whole := int64(v)
	cents := int64(v*100+0.5) - whole*100

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	s := strings.Join(groups, ".")
	if cents > 0 {
		s += fmt.Sprintf(",%02d", cents)
	}
	return s
}
