package handler

import (
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/model"
	"restro_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetOpenKots lists kitchen tickets: orders in KOT with at least one
// dish line still preparing, oldest first.
func GetOpenKots(c *fiber.Ctx) error {
	db := database.DB

	var orders []model.Order
	if err := db.
		Preload("Items").
		Where("status = ?", constants.ORDER_KOT).
		Where("EXISTS (SELECT 1 FROM order_items WHERE order_items.order_id = orders.id AND order_items.status <> ?)",
			constants.DISH_COMPLETED).
		Order("kot_at ASC").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}
