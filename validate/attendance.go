package validate

import (
	"restro_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CheckIn() fiber.Handler {
	return body[model.CheckInInput]("inputCheckIn")
}

func CheckOut() fiber.Handler {
	return body[model.CheckOutInput]("inputCheckOut")
}

func MarkAbsent() fiber.Handler {
	return body[model.MarkAbsentInput]("inputMarkAbsent")
}

func Identify() fiber.Handler {
	return body[model.IdentifyInput]("inputIdentify")
}
