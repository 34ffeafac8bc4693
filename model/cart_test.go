package model

import "testing"

func dish(id uint, name string, price int64) Dish {
	d := Dish{Name: name, Price: price}
	d.ID = id
	return d
}

func TestCartAddSameDishTwiceKeepsOnePair(t *testing.T) {
	var cart Cart
	poulet := dish(1, "Poulet braisé", 2500)

	cart.Add(poulet)
	cart.Add(poulet)

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
}

func TestCartTotalAndItemCountTrackEveryMutation(t *testing.T) {
	var cart Cart
	a := dish(1, "Attieke", 500)
	b := dish(2, "Garba", 1200)

	cart.Add(a)
	cart.Add(a)
	cart.Add(b)
	if got := cart.Total(); got != 2200 {
		t.Fatalf("expected total 2200, got %d", got)
	}
	if got := cart.ItemCount(); got != 3 {
		t.Fatalf("expected 3 units, got %d", got)
	}

	cart.Remove(a.ID)
	if got := cart.Total(); got != 1700 {
		t.Fatalf("expected total 1700 after remove, got %d", got)
	}
	if got := cart.ItemCount(); got != 2 {
		t.Fatalf("expected 2 units after remove, got %d", got)
	}
}

func TestCartRemoveLastUnitDropsPair(t *testing.T) {
	var cart Cart
	a := dish(1, "Alloco", 800)

	cart.Add(a)
	cart.Remove(a.ID)

	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %d pairs", len(cart.Items))
	}
	if cart.Total() != 0 || cart.ItemCount() != 0 {
		t.Fatalf("expected zero total and count, got %d / %d", cart.Total(), cart.ItemCount())
	}
}

func TestCartRemoveUnknownDishIsNoop(t *testing.T) {
	var cart Cart
	cart.Add(dish(1, "Igname", 600))

	cart.Remove(99)

	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatal("expected cart unchanged after removing an absent dish")
	}
}

func TestCartKeepsInsertionOrder(t *testing.T) {
	var cart Cart
	cart.Add(dish(3, "C", 100))
	cart.Add(dish(1, "A", 100))
	cart.Add(dish(2, "B", 100))
	cart.Add(dish(1, "A", 100))

	want := []uint{3, 1, 2}
	for i, id := range want {
		if cart.Items[i].Dish.ID != id {
			t.Fatalf("pair %d: expected dish %d, got %d", i, id, cart.Items[i].Dish.ID)
		}
	}
}

func TestCartAddQuantity(t *testing.T) {
	var cart Cart
	cart.AddQuantity(dish(1, "Riz sauce", 1500), 4)

	if len(cart.Items) != 1 || cart.Items[0].Quantity != 4 {
		t.Fatalf("expected one pair of quantity 4, got %+v", cart.Items)
	}
	if cart.Total() != 6000 {
		t.Fatalf("expected total 6000, got %d", cart.Total())
	}
}
