package handler

import (
	"errors"
	"fmt"
	"math/rand"
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/helper"
	"restro_manager/model"
	"restro_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	account, err := helper.GetAccountByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil || !account.IsActive || !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.WRONG_CREDENTIALS, errors.New("bad credentials"))
	}

	claim := model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	}

	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"account": fiber.Map{
			"id":       account.ID,
			"username": account.Username,
			"role":     account.Role,
		},
		"tokens": model.TokenData{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRefresh").(model.RefreshInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	token, err := helper.ParseToken(input.RefreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	accountId := uint(claims["accountId"].(float64))

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account does not exist", err)
	}

	claim := model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	}

	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"accessToken": accessToken})
}

func Me(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account does not exist", errors.New("no account"))
	}

	var account model.Account
	if err := database.DB.Preload("Staff").First(&account, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account does not exist", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func CreateAccount(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateAccount").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	if !utils.IsValidValueOfConstant(input.Role, constants.ROLE) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unknown role", errors.New("role invalid"), "role")
	}

	existing, err := helper.GetAccountByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Username already taken", errors.New("username exists"), "username")
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account := model.Account{
		Username: input.Username,
		Password: hashed,
		Email:    input.Email,
		Role:     input.Role,
		IsActive: true,
		StaffId:  input.StaffId,
	}

	if err := db.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

const otpTTL = 10 * time.Minute

func SendOtp(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputSendOtp").(model.SendOtpInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var account model.Account
	if err := db.Where("email = ?", input.Email).First(&account).Error; err != nil {
		// Do not reveal whether the email is registered.
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"sent": true})
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	token := model.PasswordResetToken{
		Email:     input.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := db.Create(&token).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	utils.SendOtpEmail(input.Email, utils.OtpEmailData{
		Code:           code,
		ExpiresMinutes: int(otpTTL.Minutes()),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"sent": true})
}

func findValidOtp(email, code string) (*model.PasswordResetToken, error) {
	var token model.PasswordResetToken
	err := database.DB.
		Where("email = ? AND code = ? AND used = ? AND expires_at > ?", email, code, false, time.Now()).
		Order("created_at DESC").
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func VerifyOtp(c *fiber.Ctx) error {
	input, ok := c.Locals("inputVerifyOtp").(model.VerifyOtpInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if _, err := findValidOtp(input.Email, input.Code); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.OTP_INVALID, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"valid": true})
}

func ResetPassword(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputResetPassword").(model.ResetPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	token, err := findValidOtp(input.Email, input.Code)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.OTP_INVALID, err)
	}

	var account model.Account
	if err := db.Where("email = ?", input.Email).First(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account.Password = hashed
	if err := db.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	token.Used = true
	db.Save(token)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"reset": true})
}
