package validate

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/model"
	"restro_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		// Dine In needs a table reference, tokened flows must not carry one.
		if input.OrderType == constants.ORDER_TYPE_DINE_IN {
			if input.TableArea == "" || input.TableNo == "" {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Dine In orders need a table", errors.New("table required"), "tableNo")
			}
		} else if input.TableArea != "" || input.TableNo != "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Only Dine In orders may reference a table", errors.New("table not allowed"), "tableNo")
		}

		c.Locals("inputCreateOrder", input)

		return c.Next()
	}
}

func UpdateOrder() fiber.Handler {
	return body[model.UpdateOrderInput]("inputUpdateOrder")
}

func SettleOrder() fiber.Handler {
	return body[model.SettleOrderInput]("inputSettleOrder")
}

func DishStatus() fiber.Handler {
	return body[model.DishStatusInput]("inputDishStatus")
}
