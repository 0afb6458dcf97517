package handler

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/model"
	"restro_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func GetCharges(c *fiber.Ctx) error {
	db := database.DB

	var charges []model.Charge
	if err := db.Order("name ASC").Find(&charges).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, charges)
}

func CreateCharge(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateCharge").(model.CreateChargeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var count int64
	db.Model(&model.Charge{}).Where("LOWER(name) = ?", strings.ToLower(input.Name)).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.CHARGE_EXISTS, errors.New("charge exists"), "name")
	}

	charge := model.Charge{
		Name:       input.Name,
		ChargeType: input.ChargeType,
		Value:      input.Value,
		IsActive:   true,
	}
	if input.IsActive != nil {
		charge.IsActive = *input.IsActive
	}

	if err := db.Create(&charge).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, charge)
}

func EditCharge(c *fiber.Ctx) error {
	db := database.DB
	chargeId, ok := c.Locals("inputChargeId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input := c.Locals("inputEditCharge").(model.CreateChargeInput)

	var charge model.Charge
	if err := db.First(&charge, chargeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var count int64
	db.Model(&model.Charge{}).
		Where("LOWER(name) = ? AND id <> ?", strings.ToLower(input.Name), charge.ID).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.CHARGE_EXISTS, errors.New("charge exists"), "name")
	}

	charge.Name = input.Name
	charge.ChargeType = input.ChargeType
	charge.Value = input.Value
	if input.IsActive != nil {
		charge.IsActive = *input.IsActive
	}

	if err := db.Save(&charge).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, charge)
}

func DeleteCharge(c *fiber.Ctx) error {
	db := database.DB
	deleteIds, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if err := db.Delete(&model.Charge{}, deleteIds.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(deleteIds.IDs)})
}
