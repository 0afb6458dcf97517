package helper

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/model"
	"strings"
	"testing"
)

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{constants.ORDER_SAVE, constants.ORDER_KOT, true},
		{constants.ORDER_SAVE, constants.ORDER_PAID, true},
		{constants.ORDER_SAVE, constants.ORDER_CANCELLED, true},
		{constants.ORDER_KOT, constants.ORDER_PAID, true},
		{constants.ORDER_KOT, constants.ORDER_CANCELLED, true},
		{constants.ORDER_KOT, constants.ORDER_SAVE, false},
		{constants.ORDER_PAID, constants.ORDER_KOT, false},
		{constants.ORDER_PAID, constants.ORDER_CANCELLED, false},
		{constants.ORDER_CANCELLED, constants.ORDER_KOT, false},
		{constants.ORDER_CANCELLED, constants.ORDER_PAID, false},
		{constants.ORDER_SAVE, constants.ORDER_SAVE, false},
	}

	for _, tc := range cases {
		if got := CanTransitionOrder(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransitionOrder(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminalOrderStatus(t *testing.T) {
	if !IsTerminalOrderStatus(constants.ORDER_PAID) {
		t.Error("Paid should be terminal")
	}
	if !IsTerminalOrderStatus(constants.ORDER_CANCELLED) {
		t.Error("Cancelled should be terminal")
	}
	if IsTerminalOrderStatus(constants.ORDER_SAVE) {
		t.Error("Save should not be terminal")
	}
	if IsTerminalOrderStatus(constants.ORDER_KOT) {
		t.Error("KOT should not be terminal")
	}
}

func TestTransitionOrderRejectsEmptyKot(t *testing.T) {
	order := &model.Order{Status: constants.ORDER_SAVE}

	err := TransitionOrder(order, constants.ORDER_KOT)
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	if order.Status != constants.ORDER_SAVE {
		t.Errorf("status changed to %q on failed transition", order.Status)
	}
}

func TestTransitionOrderKotWithItems(t *testing.T) {
	order := &model.Order{
		Status: constants.ORDER_SAVE,
		Items: []model.OrderItem{
			{DishName: "Paneer Tikka", DishPrice: 250, Quantity: 2},
		},
	}

	if err := TransitionOrder(order, constants.ORDER_KOT); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != constants.ORDER_KOT {
		t.Errorf("status = %q, want %q", order.Status, constants.ORDER_KOT)
	}
}

func TestTransitionOrderFromTerminal(t *testing.T) {
	order := &model.Order{Status: constants.ORDER_PAID}

	err := TransitionOrder(order, constants.ORDER_CANCELLED)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCanTransitionDish(t *testing.T) {
	if !CanTransitionDish(constants.DISH_PREPARING, constants.DISH_COMPLETED) {
		t.Error("Preparing -> Completed should be allowed")
	}
	if CanTransitionDish(constants.DISH_COMPLETED, constants.DISH_PREPARING) {
		t.Error("Completed -> Preparing should be rejected")
	}
	if CanTransitionDish(constants.DISH_PREPARING, constants.DISH_PREPARING) {
		t.Error("no-op dish transition should be rejected")
	}
}

func TestCalculateTotals(t *testing.T) {
	items := []model.OrderItem{
		{DishPrice: 100, Quantity: 2},
		{DishPrice: 50, Quantity: 1},
	}
	charges := []model.Charge{
		{Name: "CGST", ChargeType: constants.CHARGE_PERCENT, Value: 2.5, IsActive: true},
		{Name: "SGST", ChargeType: constants.CHARGE_PERCENT, Value: 2.5, IsActive: true},
		{Name: "Packing", ChargeType: constants.CHARGE_FIXED, Value: 20, IsActive: true},
		{Name: "Service", ChargeType: constants.CHARGE_PERCENT, Value: 5, IsActive: false},
	}

	subTotal, chargeAmount, total := CalculateTotals(items, charges, 0)

	if subTotal != 250 {
		t.Errorf("subTotal = %v, want 250", subTotal)
	}
	// 2.5% + 2.5% of 250 = 12.5, plus fixed 20; inactive charge ignored.
	if chargeAmount != 32.5 {
		t.Errorf("chargeAmount = %v, want 32.5", chargeAmount)
	}
	if total != 282.5 {
		t.Errorf("total = %v, want 282.5", total)
	}
}

func TestCalculateTotalsDiscountClamp(t *testing.T) {
	items := []model.OrderItem{{DishPrice: 40, Quantity: 1}}

	_, _, total := CalculateTotals(items, nil, 100)
	if total != 0 {
		t.Errorf("total = %v, want 0 when discount exceeds amount", total)
	}

	_, _, total = CalculateTotals(items, nil, 15)
	if total != 25 {
		t.Errorf("total = %v, want 25", total)
	}
}

func TestCalculateTotalsEmptyOrder(t *testing.T) {
	subTotal, chargeAmount, total := CalculateTotals(nil, nil, 0)
	if subTotal != 0 || chargeAmount != 0 || total != 0 {
		t.Errorf("empty order totals = (%v, %v, %v), want zeros", subTotal, chargeAmount, total)
	}
}

func TestGenerateOrderCode(t *testing.T) {
	code := GenerateOrderCode()
	if !strings.HasPrefix(code, "ORD-") {
		t.Errorf("code %q missing ORD- prefix", code)
	}
	if len(code) != 12 {
		t.Errorf("code %q length = %d, want 12", code, len(code))
	}
	if code == GenerateOrderCode() {
		t.Error("consecutive codes should differ")
	}
}
