package checkout

import (
	"time"

	"ImirStore/internal/cart"
)

type Delivery string

const (
	DeliveryStandard Delivery = "standard"
	DeliveryExpress  Delivery = "express"
)

const expressDeliveryFee int64 = 25

// Address is the shipping destination captured at checkout.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Region    string `json:"region,omitempty"`
	Zip       string `json:"zip"`
}

// Order is a confirmed checkout: a frozen copy of the cart lines plus the
// totals as they were charged.
type Order struct {
	ID           string      `json:"id"`
	SessionID    string      `json:"session_id"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Address      Address     `json:"address"`
	Delivery     Delivery    `json:"delivery"`
	Items        []cart.Item `json:"items"`
	Subtotal     int64       `json:"subtotal"`
	DeliveryCost int64       `json:"delivery_cost"`
	Total        int64       `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// deliveryCost prices the chosen method: express is a flat fee, standard
// follows the cart's free-over-threshold rule.
func deliveryCost(method Delivery, subtotal int64) int64 {
	if method == DeliveryExpress {
		return expressDeliveryFee
	}
	return cart.DeliveryCost(subtotal)
}
