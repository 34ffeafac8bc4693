package helper

import (
	"strings"
	"testing"

	"resto_manager/model"
)

func sampleOrder() model.Order {
	comment := "Sans piment"
	return model.Order{
		Number:  "CMD-7F3A2C1B",
		Status:  "nouvelle",
		Type:    "sur_place",
		Total:   2200,
		Comment: &comment,
		Items: []model.OrderItem{
			{DishName: "Attieke poisson", UnitPrice: 500, Quantity: 2, Subtotal: 1000},
			{DishName: "Poulet DG", UnitPrice: 1200, Quantity: 1, Subtotal: 1200},
		},
	}
}

func TestBuildOrderMessage(t *testing.T) {
	msg := BuildOrderMessage("Chez Maman", sampleOrder(), "Awa", "+22997000000")

	for _, want := range []string{
		"*Nouvelle commande — Chez Maman*",
		"*N°:* CMD-7F3A2C1B",
		"*Type:* sur place",
		"*Client:* Awa",
		"*Tél:* +22997000000",
		"• Attieke poisson x2 — 1 000 F CFA",
		"• Poulet DG x1 — 1 200 F CFA",
		"*Total: 2 200 F CFA*",
		"*Note:* Sans piment",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}

	if got := strings.Count(msg, "• "); got != 2 {
		t.Fatalf("expected exactly one line per distinct dish, got %d bullets", got)
	}
}

func TestBuildOrderMessageOmitsEmptyNote(t *testing.T) {
	order := sampleOrder()
	order.Comment = nil

	msg := BuildOrderMessage("Chez Maman", order, "Awa", "+22997000000")
	if strings.Contains(msg, "*Note:*") {
		t.Fatal("expected no note section when comment is empty")
	}
}

func TestWhatsappLink(t *testing.T) {
	link := WhatsappLink("+229 97 00 00 00", "Nouvelle commande")

	if !strings.HasPrefix(link, "https://wa.me/22997000000?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.ContainsAny(strings.TrimPrefix(link, "https://wa.me/22997000000?text="), " \n") {
		t.Fatalf("message not query-encoded: %s", link)
	}
}
