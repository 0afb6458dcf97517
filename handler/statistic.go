package handler

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/helper"
	"restro_manager/model"
	"restro_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetSummary aggregates paid orders over the requested period and the
// preceding window of equal length for growth figures.
func GetSummary(c *fiber.Ctx) error {
	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	period := c.Query("period", "today")
	rng, err := utils.ParsePeriod(period, time.Now())
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "period")
	}

	db := database.DB

	type TopDish struct {
		DishName string  `json:"dishName"`
		Quantity int64   `json:"quantity"`
		Revenue  float64 `json:"revenue"`
	}

	type TypeRow struct {
		OrderType string  `json:"orderType"`
		Orders    int64   `json:"orders"`
		Revenue   float64 `json:"revenue"`
	}

	type CategoryRow struct {
		Category string  `json:"category"`
		Quantity int64   `json:"quantity"`
		Revenue  float64 `json:"revenue"`
	}

	var stats struct {
		Revenue       float64       `json:"revenue"`
		Orders        int64         `json:"orders"`
		DishesSold    int64         `json:"dishesSold"`
		AvgOrderValue float64       `json:"avgOrderValue"`
		Cancelled     int64         `json:"cancelled"`
		RevenueGrowth float64       `json:"revenueGrowth"`
		OrdersGrowth  float64       `json:"ordersGrowth"`
		ByType        []TypeRow     `json:"byType"`
		ByCategory    []CategoryRow `json:"byCategory"`
		TopDishes     []TopDish     `json:"topDishes"`
		StaffPresent  int64         `json:"staffPresent"`
		OpenBookings  int64         `json:"openBookings"`
	}

	db.Raw(`
        SELECT COALESCE(SUM(total_amount), 0)
        FROM orders
        WHERE status = ? AND paid_at >= ? AND paid_at < ?
    `, constants.ORDER_PAID, rng.Start, rng.End).Scan(&stats.Revenue)

	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE status = ? AND paid_at >= ? AND paid_at < ?
    `, constants.ORDER_PAID, rng.Start, rng.End).Scan(&stats.Orders)

	db.Raw(`
        SELECT COALESCE(SUM(oi.quantity), 0)
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        WHERE o.status = ? AND o.paid_at >= ? AND o.paid_at < ?
    `, constants.ORDER_PAID, rng.Start, rng.End).Scan(&stats.DishesSold)

	db.Model(&model.Order{}).
		Where("status = ? AND cancelled_at >= ? AND cancelled_at < ?",
			constants.ORDER_CANCELLED, rng.Start, rng.End).
		Count(&stats.Cancelled)

	if stats.Orders > 0 {
		stats.AvgOrderValue = stats.Revenue / float64(stats.Orders)
	}

	var prevRevenue float64
	var prevOrders int64

	db.Raw(`
        SELECT COALESCE(SUM(total_amount), 0)
        FROM orders
        WHERE status = ? AND paid_at >= ? AND paid_at < ?
    `, constants.ORDER_PAID, rng.PrevStart, rng.PrevEnd).Scan(&prevRevenue)

	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE status = ? AND paid_at >= ? AND paid_at < ?
    `, constants.ORDER_PAID, rng.PrevStart, rng.PrevEnd).Scan(&prevOrders)

	stats.RevenueGrowth = utils.CalculateGrowth(stats.Revenue, prevRevenue)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.Orders), float64(prevOrders))

	db.Raw(`
        SELECT o.order_type, COUNT(*) AS orders, COALESCE(SUM(o.total_amount), 0) AS revenue
        FROM orders o
        WHERE o.status = ? AND o.paid_at >= ? AND o.paid_at < ?
        GROUP BY o.order_type
        ORDER BY revenue DESC
    `, constants.ORDER_PAID, rng.Start, rng.End).Scan(&stats.ByType)

	db.Raw(`
        SELECT
            COALESCE(mc.name, 'Uncategorized') AS category,
            COALESCE(SUM(oi.quantity), 0) AS quantity,
            COALESCE(SUM(oi.quantity * oi.dish_price), 0) AS revenue
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
        LEFT JOIN menu_categories mc ON mc.id = mi.category_id
        WHERE o.status = ? AND o.paid_at >= ? AND o.paid_at < ?
        GROUP BY mc.name
        ORDER BY revenue DESC
    `, constants.ORDER_PAID, rng.Start, rng.End).Scan(&stats.ByCategory)

	db.Raw(`
        SELECT
            oi.dish_name,
            COALESCE(SUM(oi.quantity), 0) AS quantity,
            COALESCE(SUM(oi.quantity * oi.dish_price), 0) AS revenue
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        WHERE o.status = ? AND o.paid_at >= ? AND o.paid_at < ?
        GROUP BY oi.dish_name
        ORDER BY quantity DESC
        LIMIT 5
    `, constants.ORDER_PAID, rng.Start, rng.End).Scan(&stats.TopDishes)

	today := time.Now().Format("2006-01-02")
	db.Model(&model.Attendance{}).
		Where("date = ? AND status = ?", today, constants.ATTENDANCE_PRESENT).
		Count(&stats.StaffPresent)

	db.Model(&model.Booking{}).
		Where("status IN ?", []string{constants.BOOKING_BOOKED, constants.BOOKING_CHECKED_IN}).
		Count(&stats.OpenBookings)

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GetRevenueSeries returns a per-day revenue line for the period, for the
// dashboard chart.
func GetRevenueSeries(c *fiber.Ctx) error {
	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	period := c.Query("period", "week")
	rng, err := utils.ParsePeriod(period, time.Now())
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "period")
	}

	db := database.DB

	type DayRow struct {
		Day     string  `json:"day"`
		Orders  int64   `json:"orders"`
		Revenue float64 `json:"revenue"`
	}

	var rows []DayRow
	db.Raw(`
        SELECT
            TO_CHAR(paid_at, 'YYYY-MM-DD') AS day,
            COUNT(*) AS orders,
            COALESCE(SUM(total_amount), 0) AS revenue
        FROM orders
        WHERE status = ? AND paid_at >= ? AND paid_at < ?
        GROUP BY day
        ORDER BY day ASC
    `, constants.ORDER_PAID, rng.Start, rng.End).Scan(&rows)

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}
