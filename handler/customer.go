package handler

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/model"
	"restro_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetCustomers(c *fiber.Ctx) error {
	filterInput := new(model.FilterCustomer)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Customer{})
	if filterInput.SearchKey != "" {
		like := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var customers []model.Customer
	condition.Order("name ASC").Find(&customers)

	response := &model.ResponseCustom{
		Rows:       customers,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetCustomerById(c *fiber.Ctx) error {
	customerId := c.Locals("inputId").(int)
	db := database.DB

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func CreateCustomer(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateCustomer").(model.CreateCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var count int64
	db.Model(&model.Customer{}).Where("phone = ?", input.Phone).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.CUSTOMER_PHONE_EXISTS, errors.New("phone exists"), "phone")
	}

	newCustomer := new(model.Customer)
	copier.Copy(&newCustomer, &input)

	if err := db.Create(&newCustomer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newCustomer)
}

func EditCustomer(c *fiber.Ctx) error {
	db := database.DB
	customerId, ok := c.Locals("inputCustomerId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input := c.Locals("inputEditCustomer").(model.CreateCustomerInput)

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var count int64
	db.Model(&model.Customer{}).
		Where("phone = ? AND id <> ?", input.Phone, customer.ID).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.CUSTOMER_PHONE_EXISTS, errors.New("phone exists"), "phone")
	}

	copier.CopyWithOption(&customer, &input, copier.Option{IgnoreEmpty: true})

	if err := db.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func DeleteCustomer(c *fiber.Ctx) error {
	db := database.DB
	deleteIds, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var activeCount int64
	db.Model(&model.Booking{}).
		Where("customer_id IN ? AND status IN ?", deleteIds.IDs,
			[]string{constants.BOOKING_BOOKED, constants.BOOKING_CHECKED_IN}).
		Count(&activeCount)
	if activeCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Customer has an active booking", errors.New("active booking"))
	}

	if err := db.Delete(&model.Customer{}, deleteIds.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(deleteIds.IDs)})
}
