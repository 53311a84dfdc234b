package helper

import (
	"math"
	"pizzeria_manager/constants"
	"pizzeria_manager/model"
	"strings"
)

// transitions is the lifecycle graph. Forward-only, plus cancellation
// from the two non-terminal early states.
var transitions = map[string][]string{
	constants.ORDER_RECEIVED:  {constants.ORDER_PREPARING, constants.ORDER_CANCELLED},
	constants.ORDER_PREPARING: {constants.ORDER_READY, constants.ORDER_CANCELLED},
	constants.ORDER_READY:     {constants.ORDER_DELIVERED},
	constants.ORDER_DELIVERED: {},
	constants.ORDER_CANCELLED: {},
}

// CanTransition reports whether from→to is an edge of the graph.
// Replaying the current status is not an edge: the caller gets
// ErrInvalidTransition instead of a silent double-apply.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsTerminalStatus(status string) bool {
	return status == constants.ORDER_DELIVERED || status == constants.ORDER_CANCELLED
}

// RoundEuro rounds half-up to 2 decimals. Half-up, not banker's: a
// €10.125 total is €10.13 on the receipt.
func RoundEuro(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemTotal prices one line: (unit + active extras) × quantity.
func ItemTotal(unitPrice float64, extras []model.OrderItemExtra, quantity int) float64 {
	price := unitPrice
	for _, e := range extras {
		price += e.Price
	}
	return price * float64(quantity)
}

// OrderTotal prices the whole cart, rounded once at the end.
func OrderTotal(items []model.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += ItemTotal(item.UnitPrice, item.Extras, item.Quantity)
	}
	return RoundEuro(total)
}

// ValidateOrderInput enforces the checkout preconditions that do not
// need storage: non-empty cart and address present iff delivery.
func ValidateOrderInput(input model.CreateOrderInput) string {
	if len(input.Items) == 0 {
		return "Il carrello è vuoto"
	}
	hasAddress := input.DeliveryAddress != nil && strings.TrimSpace(*input.DeliveryAddress) != ""
	if input.FulfillmentType == constants.FULFILLMENT_DELIVERY && !hasAddress {
		return "Indirizzo di consegna obbligatorio"
	}
	if input.FulfillmentType == constants.FULFILLMENT_PICKUP && hasAddress {
		return "Indirizzo non previsto per l'asporto"
	}
	return ""
}
