package cart

import "ImirStore/internal/catalog"

// Item is one cart line: a product and how many of it. Quantity is always
// at least 1; a line that would drop to zero is removed instead.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Delivery is free only when the subtotal is strictly above the threshold.
const (
	freeDeliveryOver int64 = 150
	deliveryFee      int64 = 12
)

// Snapshot is an immutable view of one session's cart with its derived
// totals. Totals are recomputed on every read; carts are small.
type Snapshot struct {
	Items        []Item `json:"items"`
	Count        int    `json:"count"`
	Subtotal     int64  `json:"subtotal"`
	DeliveryCost int64  `json:"delivery_cost"`
	Total        int64  `json:"total"`
	DrawerOpen   bool   `json:"drawer_open"`
}

func snapshotOf(items []Item, drawerOpen bool) Snapshot {
	out := make([]Item, len(items))
	copy(out, items)

	var count int
	var subtotal int64
	for _, it := range items {
		count += it.Quantity
		subtotal += it.Product.Price * int64(it.Quantity)
	}

	delivery := DeliveryCost(subtotal)
	return Snapshot{
		Items:        out,
		Count:        count,
		Subtotal:     subtotal,
		DeliveryCost: delivery,
		Total:        subtotal + delivery,
		DrawerOpen:   drawerOpen,
	}
}

func DeliveryCost(subtotal int64) int64 {
	if subtotal > freeDeliveryOver {
		return 0
	}
	return deliveryFee
}
