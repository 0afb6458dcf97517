package helper

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/model"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyOrder        = errors.New("order has no dishes")
)

// Forward-only order transitions:
//
//	Save -> KOT -> Paid
//	Save -> Paid
//	Save|KOT -> Cancelled
//
// Paid and Cancelled are terminal.
var orderTransitions = map[string][]string{
	constants.ORDER_SAVE: {constants.ORDER_KOT, constants.ORDER_PAID, constants.ORDER_CANCELLED},
	constants.ORDER_KOT:  {constants.ORDER_PAID, constants.ORDER_CANCELLED},
}

func IsTerminalOrderStatus(status string) bool {
	return status == constants.ORDER_PAID || status == constants.ORDER_CANCELLED
}

func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionOrder validates a status change, additionally rejecting
// kitchen submission of an order without dish lines.
func TransitionOrder(order *model.Order, to string) error {
	if !CanTransitionOrder(order.Status, to) {
		return ErrInvalidTransition
	}
	if to == constants.ORDER_KOT && len(order.Items) == 0 {
		return ErrEmptyOrder
	}
	order.Status = to
	return nil
}

// Dish lines only move Preparing -> Completed.
func CanTransitionDish(from, to string) bool {
	return from == constants.DISH_PREPARING && to == constants.DISH_COMPLETED
}

// CalculateTotals computes sub total, applied charges and grand total.
// Percent charges apply to the sub total; the result never goes negative.
func CalculateTotals(items []model.OrderItem, charges []model.Charge, discount float64) (subTotal, chargeAmount, total float64) {
	for _, item := range items {
		subTotal += item.DishPrice * float64(item.Quantity)
	}
	for _, charge := range charges {
		if !charge.IsActive {
			continue
		}
		switch charge.ChargeType {
		case constants.CHARGE_PERCENT:
			chargeAmount += subTotal * charge.Value / 100
		case constants.CHARGE_FIXED:
			chargeAmount += charge.Value
		}
	}
	total = subTotal + chargeAmount - discount
	if total < 0 {
		total = 0
	}
	return subTotal, chargeAmount, total
}

func GenerateOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

func GenerateBookingCode() string {
	return "BKG-" + strings.ToUpper(uuid.NewString()[:8])
}
