package validate

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/model"
	"restro_manager/utils"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func CreateRoom() fiber.Handler {
	return body[model.CreateRoomInput]("inputCreateRoom")
}

func EditRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.CreateRoomInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputEditRoom", input)
		c.Locals("inputRoomId", uint(valueKey))

		return c.Next()
	}
}

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		checkIn, _ := time.Parse("2006-01-02", input.CheckIn)
		checkOut, _ := time.Parse("2006-01-02", input.CheckOut)
		if !checkOut.After(checkIn) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Check-out must be after check-in", errors.New("invalid date range"), "checkOut")
		}

		c.Locals("inputCreateBooking", input)

		return c.Next()
	}
}
