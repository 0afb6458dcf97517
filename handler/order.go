package handler

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/helper"
	"restro_manager/model"
	"restro_manager/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func activeCharges(db *gorm.DB) []model.Charge {
	var charges []model.Charge
	db.Where("is_active = ?", true).Find(&charges)
	return charges
}

// nextToken issues the daily ticket number for tokened (non table) flows.
func nextToken(tx *gorm.DB) int {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var maxToken int
	tx.Raw(`
        SELECT COALESCE(MAX(token), 0)
        FROM orders
        WHERE order_date >= ? AND token IS NOT NULL
    `, dayStart).Scan(&maxToken)
	return maxToken + 1
}

func buildOrderItems(inputs []model.OrderItemInput) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, model.OrderItem{
			MenuItemId:   in.MenuItemId,
			DishName:     in.DishName,
			DishPrice:    in.DishPrice,
			Quantity:     in.Quantity,
			Status:       constants.DISH_PREPARING,
			SpecialNotes: in.SpecialNotes,
		})
	}
	return items
}

func CreateOrder(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	claim, _, _ := helper.GetInfoAccountFromToken(c)

	order := model.Order{
		PublicCode:    helper.GenerateOrderCode(),
		OrderType:     input.OrderType,
		OrderSource:   input.OrderSource,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Status:        constants.ORDER_SAVE,
		Items:         buildOrderItems(input.Items),
		OrderDate:     time.Now(),
		CreatedBy:     claim.AccountId,
	}
	order.SubTotal, order.ChargeAmount, order.TotalAmount = helper.CalculateTotals(order.Items, activeCharges(db), 0)

	err := db.Transaction(func(tx *gorm.DB) error {
		if input.OrderType == constants.ORDER_TYPE_DINE_IN {
			var table model.DiningTable
			if err := tx.Where("area = ? AND table_no = ?", input.TableArea, input.TableNo).First(&table).Error; err != nil {
				return err
			}

			// One active order per (area, table_no).
			var activeCount int64
			tx.Model(&model.Order{}).
				Where("table_area = ? AND table_no = ? AND status IN ?",
					input.TableArea, input.TableNo,
					[]string{constants.ORDER_SAVE, constants.ORDER_KOT}).
				Count(&activeCount)
			if activeCount > 0 {
				return errors.New(constants.TABLE_OCCUPIED)
			}

			order.TableArea = &table.Area
			order.TableNo = &table.TableNo
		} else {
			token := nextToken(tx)
			order.Token = &token
		}

		return tx.Create(&order).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		if err.Error() == constants.TABLE_OCCUPIED {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_OCCUPIED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	BroadcastKotUpdate(order.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetOrders(c *fiber.Ctx) error {
	filterInput := new(model.FilterOrder)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Order{})
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.OrderType != "" {
		condition = condition.Where("order_type = ?", filterInput.OrderType)
	}
	if filterInput.From != "" {
		if from, err := time.Parse("2006-01-02", filterInput.From); err == nil {
			condition = condition.Where("order_date >= ?", from)
		}
	}
	if filterInput.To != "" {
		if to, err := time.Parse("2006-01-02", filterInput.To); err == nil {
			condition = condition.Where("order_date < ?", to.AddDate(0, 0, 1))
		}
	}
	if filterInput.SearchKey != "" {
		like := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where(
			"LOWER(public_code) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(customer_phone) LIKE ?",
			like, like, like)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var orders []model.Order
	condition.Preload("Items").Order("order_date DESC").Find(&orders)

	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrderByCode(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Where("public_code = ?", orderCode).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrder replaces customer fields on any open order; dish lines can
// only be replaced while the order is still in Save.
func UpdateOrder(c *fiber.Ctx) error {
	db := database.DB
	orderId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputUpdateOrder").(model.UpdateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderId).Error; err != nil {
			return err
		}
		if helper.IsTerminalOrderStatus(order.Status) {
			return helper.ErrInvalidTransition
		}

		if input.CustomerName != nil {
			order.CustomerName = *input.CustomerName
		}
		if input.CustomerPhone != nil {
			order.CustomerPhone = *input.CustomerPhone
		}

		if input.Items != nil {
			if order.Status != constants.ORDER_SAVE {
				return helper.ErrInvalidTransition
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
				return err
			}
			order.Items = buildOrderItems(input.Items)
		}

		order.SubTotal, order.ChargeAmount, order.TotalAmount = helper.CalculateTotals(order.Items, activeCharges(tx), order.DiscountAmount)

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&order).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		if errors.Is(err, helper.ErrInvalidTransition) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	BroadcastKotUpdate(order.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// SendToKitchen moves Save -> KOT and stamps the KOT time. Rejected for
// empty orders and for anything already sent, settled or cancelled.
func SendToKitchen(c *fiber.Ctx) error {
	db := database.DB
	orderId := c.Locals("inputId").(int)

	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderId).Error; err != nil {
			return err
		}

		if err := helper.TransitionOrder(&order, constants.ORDER_KOT); err != nil {
			return err
		}

		now := time.Now()
		order.KotAt = &now

		return tx.Save(&order).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		if errors.Is(err, helper.ErrEmptyOrder) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_ITEMS_EMPTY, err)
		}
		if errors.Is(err, helper.ErrInvalidTransition) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	BroadcastKotUpdate(order.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// SettleOrder moves Save|KOT -> Paid, recomputing totals with the final
// discount so the stored amounts always reflect what was charged.
func SettleOrder(c *fiber.Ctx) error {
	db := database.DB
	orderId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputSettleOrder").(model.SettleOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderId).Error; err != nil {
			return err
		}

		if err := helper.TransitionOrder(&order, constants.ORDER_PAID); err != nil {
			return err
		}

		order.DiscountAmount = input.DiscountAmount
		order.SubTotal, order.ChargeAmount, order.TotalAmount = helper.CalculateTotals(order.Items, activeCharges(tx), input.DiscountAmount)
		order.PaidAmount = input.PaidAmount
		order.PaymentMethod = input.PaymentMethod
		now := time.Now()
		order.PaidAt = &now

		return tx.Save(&order).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		if errors.Is(err, helper.ErrInvalidTransition) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	BroadcastKotUpdate(order.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func CancelOrder(c *fiber.Ctx) error {
	db := database.DB
	orderId := c.Locals("inputId").(int)

	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderId).Error; err != nil {
			return err
		}

		if err := helper.TransitionOrder(&order, constants.ORDER_CANCELLED); err != nil {
			return err
		}

		now := time.Now()
		order.CancelledAt = &now

		return tx.Save(&order).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		if errors.Is(err, helper.ErrInvalidTransition) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	BroadcastKotUpdate(order.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateDishStatus flips a single dish line. Preparing -> Completed only;
// the reverse direction is rejected.
func UpdateDishStatus(c *fiber.Ctx) error {
	db := database.DB
	orderId := c.Locals("inputId").(int)
	itemId, err := c.ParamsInt("itemId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	input, ok := c.Locals("inputDishStatus").(model.DishStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var item model.OrderItem
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND order_id = ?", itemId, orderId).First(&item).Error; err != nil {
			return err
		}

		if !helper.CanTransitionDish(item.Status, input.Status) {
			return helper.ErrInvalidTransition
		}

		item.Status = input.Status
		return tx.Save(&item).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		if errors.Is(err, helper.ErrInvalidTransition) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	BroadcastKotUpdate(uint(orderId))

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// UpdateAllDishStatus marks every Preparing line of the order Completed.
func UpdateAllDishStatus(c *fiber.Ctx) error {
	db := database.DB
	orderId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputDishStatus").(model.DishStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if input.Status != constants.DISH_COMPLETED {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, helper.ErrInvalidTransition)
	}

	var order model.Order
	if err := db.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if err := db.Model(&model.OrderItem{}).
		Where("order_id = ? AND status = ?", order.ID, constants.DISH_PREPARING).
		Update("status", constants.DISH_COMPLETED).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	BroadcastKotUpdate(order.ID)

	var items []model.OrderItem
	db.Where("order_id = ?", order.ID).Find(&items)

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}
