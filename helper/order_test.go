package helper

import (
	"testing"

	"pizzeria_manager/constants"
	"pizzeria_manager/model"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{constants.ORDER_RECEIVED, constants.ORDER_PREPARING},
		{constants.ORDER_RECEIVED, constants.ORDER_CANCELLED},
		{constants.ORDER_PREPARING, constants.ORDER_READY},
		{constants.ORDER_PREPARING, constants.ORDER_CANCELLED},
		{constants.ORDER_READY, constants.ORDER_DELIVERED},
	}
	for _, c := range allowed {
		if !CanTransition(c.from, c.to) {
			t.Errorf("CanTransition(%q, %q) = false, want true", c.from, c.to)
		}
	}

	forbidden := []struct{ from, to string }{
		{constants.ORDER_RECEIVED, constants.ORDER_READY},
		{constants.ORDER_RECEIVED, constants.ORDER_DELIVERED},
		{constants.ORDER_READY, constants.ORDER_CANCELLED},
		{constants.ORDER_READY, constants.ORDER_PREPARING},
		{constants.ORDER_DELIVERED, constants.ORDER_CANCELLED},
		{constants.ORDER_DELIVERED, constants.ORDER_RECEIVED},
		{constants.ORDER_CANCELLED, constants.ORDER_RECEIVED},
	}
	for _, c := range forbidden {
		if CanTransition(c.from, c.to) {
			t.Errorf("CanTransition(%q, %q) = true, want false", c.from, c.to)
		}
	}
}

func TestCanTransitionRejectsReplay(t *testing.T) {
	for status := range transitions {
		if CanTransition(status, status) {
			t.Errorf("CanTransition(%q, %q) = true, replay must be rejected", status, status)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	if !IsTerminalStatus(constants.ORDER_DELIVERED) || !IsTerminalStatus(constants.ORDER_CANCELLED) {
		t.Error("delivered and cancelled must be terminal")
	}
	if IsTerminalStatus(constants.ORDER_RECEIVED) || IsTerminalStatus(constants.ORDER_READY) {
		t.Error("received and ready must not be terminal")
	}
}

func TestRoundEuroHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{10.125, 10.13},
		{10.124, 10.12},
		{0, 0},
		{7.005, 7.01},
		{19.999, 20.00},
	}
	for _, c := range cases {
		if got := RoundEuro(c.in); got != c.want {
			t.Errorf("RoundEuro(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestItemTotal(t *testing.T) {
	extras := []model.OrderItemExtra{
		{Name: "Prosciutto", Price: 1.5},
		{Name: "Rucola", Price: 0.5},
	}
	if got := ItemTotal(7.5, extras, 2); got != 19.0 {
		t.Errorf("ItemTotal = %v, want 19.0", got)
	}
	if got := ItemTotal(6.0, nil, 1); got != 6.0 {
		t.Errorf("ItemTotal without extras = %v, want 6.0", got)
	}
}

func TestOrderTotalRoundsOnce(t *testing.T) {
	items := []model.OrderItem{
		{UnitPrice: 7.5, Quantity: 1, Extras: []model.OrderItemExtra{{Price: 0.8}}},
		{UnitPrice: 6.0, Quantity: 2},
	}
	if got := OrderTotal(items); got != 20.30 {
		t.Errorf("OrderTotal = %v, want 20.30", got)
	}
	if got := OrderTotal(nil); got != 0 {
		t.Errorf("OrderTotal(nil) = %v, want 0", got)
	}
}

func TestValidateOrderInput(t *testing.T) {
	address := "Via Etnea 10, Catania"
	empty := "  "
	items := []model.OrderItemInput{{ProductId: 1, Quantity: 1}}

	cases := []struct {
		name    string
		input   model.CreateOrderInput
		wantErr bool
	}{
		{
			"empty cart",
			model.CreateOrderInput{FulfillmentType: constants.FULFILLMENT_PICKUP},
			true,
		},
		{
			"pickup without address",
			model.CreateOrderInput{Items: items, FulfillmentType: constants.FULFILLMENT_PICKUP},
			false,
		},
		{
			"pickup with address",
			model.CreateOrderInput{Items: items, FulfillmentType: constants.FULFILLMENT_PICKUP, DeliveryAddress: &address},
			true,
		},
		{
			"delivery with address",
			model.CreateOrderInput{Items: items, FulfillmentType: constants.FULFILLMENT_DELIVERY, DeliveryAddress: &address},
			false,
		},
		{
			"delivery without address",
			model.CreateOrderInput{Items: items, FulfillmentType: constants.FULFILLMENT_DELIVERY},
			true,
		},
		{
			"delivery with blank address",
			model.CreateOrderInput{Items: items, FulfillmentType: constants.FULFILLMENT_DELIVERY, DeliveryAddress: &empty},
			true,
		},
	}
	for _, c := range cases {
		msg := ValidateOrderInput(c.input)
		if (msg != "") != c.wantErr {
			t.Errorf("%s: ValidateOrderInput = %q, wantErr %v", c.name, msg, c.wantErr)
		}
	}
}
