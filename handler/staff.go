package handler

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/helper"
	"restro_manager/model"
	"restro_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetStaffs(c *fiber.Ctx) error {
	filterInput := new(model.FilterStaff)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Staff{})
	if filterInput.SearchKey != "" {
		like := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(staff_code) LIKE ?",
			like, like, like)
	}
	if filterInput.Position != "" {
		condition = condition.Where("position = ?", filterInput.Position)
	}
	if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", *filterInput.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var staffs model.Staffs
	condition.Order("id ASC").Find(&staffs)

	response := &model.ResponseCustom{
		Rows:       staffs,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetStaffById(c *fiber.Ctx) error {
	staffId := c.Locals("inputId").(int)
	db := database.DB

	var staff model.Staff
	if err := db.Preload("Attendance", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("date DESC").Limit(31)
	}).First(&staff, staffId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, staff)
}

func CreateStaff(c *fiber.Ctx) error {
	db := database.DB
	staffInput, ok := c.Locals("inputCreateStaff").(model.CreateStaffInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var count int64
	db.Model(&model.Staff{}).Where("staff_code = ?", staffInput.StaffCode).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.STAFF_CODE_EXISTS, errors.New("staff code exists"), "staffCode")
	}

	newStaff := new(model.Staff)
	copier.Copy(&newStaff, &staffInput)
	newStaff.IsActive = true

	if err := db.Create(&newStaff).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newStaff)
}

func EditStaff(c *fiber.Ctx) error {
	db := database.DB
	staffId, ok := c.Locals("inputStaffId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	staffInput := c.Locals("inputEditStaff").(model.CreateStaffInput)

	var staff model.Staff
	if err := db.First(&staff, staffId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var count int64
	db.Model(&model.Staff{}).
		Where("staff_code = ? AND id <> ?", staffInput.StaffCode, staff.ID).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.STAFF_CODE_EXISTS, errors.New("staff code exists"), "staffCode")
	}

	copier.CopyWithOption(&staff, &staffInput, copier.Option{IgnoreEmpty: true})

	if err := db.Save(&staff).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, staff)
}

func DeleteStaff(c *fiber.Ctx) error {
	db := database.DB
	deleteIds, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	if err := db.Model(&model.Staff{}).
		Where("id IN ?", deleteIds.IDs).
		Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deactivated": len(deleteIds.IDs)})
}

// RegisterFace stores the staff member's reference descriptor used by
// the attendance kiosk.
func RegisterFace(c *fiber.Ctx) error {
	db := database.DB
	staffId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputRegisterFace").(model.RegisterFaceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var staff model.Staff
	if err := db.First(&staff, staffId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	encoded, err := helper.EncodeDescriptor(input.Descriptor)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	staff.FaceDescriptor = encoded

	if err := db.Save(&staff).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"enrolled": true})
}
