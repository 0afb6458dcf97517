package validate

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/model"
	"restro_manager/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func CreateCustomer() fiber.Handler {
	return body[model.CreateCustomerInput]("inputCreateCustomer")
}

func EditCustomer(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.CreateCustomerInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputEditCustomer", input)
		c.Locals("inputCustomerId", uint(valueKey))

		return c.Next()
	}
}
