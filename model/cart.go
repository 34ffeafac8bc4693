package model

// CartItem is one (dish, quantity) pair. The dish is a read snapshot; the
// price used at checkout is re-read from the database.
type CartItem struct {
	Dish     Dish `json:"dish"`
	Quantity int  `json:"quantity"`
}

// Cart is the in-progress selection of one customer. It lives for a single
// checkout flow and is never persisted; pairs keep insertion order and stay
// unique by dish id.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add increments the quantity of an already-present dish, or appends a new
// pair with quantity 1.
func (p *Cart) Add(dish Dish) {
	for i := range p.Items {
		if p.Items[i].Dish.ID == dish.ID {
			p.Items[i].Quantity++
			return
		}
	}
	p.Items = append(p.Items, CartItem{Dish: dish, Quantity: 1})
}

// AddQuantity repeats Add, for checkout payloads that carry quantities.
func (p *Cart) AddQuantity(dish Dish, quantity int) {
	for i := 0; i < quantity; i++ {
		p.Add(dish)
	}
}

// Remove decrements the quantity of a dish, dropping the pair when the last
// unit goes. Unknown ids are ignored.
func (p *Cart) Remove(dishId uint) {
	for i := range p.Items {
		if p.Items[i].Dish.ID != dishId {
			continue
		}
		if p.Items[i].Quantity > 1 {
			p.Items[i].Quantity--
		} else {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
		}
		return
	}
}

// Total is recomputed on every call so it always reflects the current pairs.
func (p *Cart) Total() int64 {
	var total int64
	for _, item := range p.Items {
		total += item.Dish.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount counts units, not pairs: three of one dish count as three.
func (p *Cart) ItemCount() int {
	count := 0
	for _, item := range p.Items {
		count += item.Quantity
	}
	return count
}

func (p *Cart) IsEmpty() bool {
	return len(p.Items) == 0
}
