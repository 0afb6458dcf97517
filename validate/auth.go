package validate

import (
	"errors"
	"restro_manager/model"
	"restro_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return body[model.LoginInput]("inputLogin")
}

func Refresh() fiber.Handler {
	return body[model.RefreshInput]("inputRefresh")
}

func SendOtp() fiber.Handler {
	return body[model.SendOtpInput]("inputSendOtp")
}

func VerifyOtp() fiber.Handler {
	return body[model.VerifyOtpInput]("inputVerifyOtp")
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ResetPasswordInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		if input.NewPassword != input.RepeatPassword {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Passwords do not match", errors.New("repeatPassword invalid"), "repeatPassword")
		}

		c.Locals("inputResetPassword", input)

		return c.Next()
	}
}

func CreateAccount() fiber.Handler {
	return body[model.CreateAccountInput]("inputCreateAccount")
}
