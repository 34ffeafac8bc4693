package helper

import (
	"fmt"
	"net/url"
	"strings"

	"resto_manager/model"
	"resto_manager/utils"
)

// BuildOrderMessage renders the outbound WhatsApp text for a new order: one
// bullet per cart pair, then the total and the optional note.
func BuildOrderMessage(restaurantName string, order model.Order, clientName, clientPhone string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🍽️ *Nouvelle commande — %s*\n\n", restaurantName)
	fmt.Fprintf(&b, "*N°:* %s\n", order.Number)
	fmt.Fprintf(&b, "*Type:* %s\n", strings.ReplaceAll(order.Type, "_", " "))
	fmt.Fprintf(&b, "*Client:* %s\n", clientName)
	fmt.Fprintf(&b, "*Tél:* %s\n\n", clientPhone)

	b.WriteString("*Commande:*\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s x%d — %s\n", item.DishName, item.Quantity, utils.FormatPrice(item.Subtotal))
	}

	fmt.Fprintf(&b, "\n*Total: %s*", utils.FormatPrice(order.Total))
	if order.Comment != nil && *order.Comment != "" {
		fmt.Fprintf(&b, "\n\n*Note:* %s", *order.Comment)
	}

	return b.String()
}

// WhatsappLink builds the wa.me deep link: the number keeps digits only and
// the message is query-encoded.
func WhatsappLink(whatsapp, message string) string {
	var digits strings.Builder
	for _, r := range whatsapp {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(message))
}
