package handler

import (
	"errors"
	"fmt"
	"restro_manager/config"
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/model"
	"restro_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetTables(c *fiber.Ctx) error {
	filterInput := new(model.FilterTable)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.DiningTable{})
	if filterInput.Area != "" {
		condition = condition.Where("area = ?", filterInput.Area)
	}
	if filterInput.SearchKey != "" {
		like := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(area) LIKE ? OR LOWER(table_no) LIKE ?", like, like)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var tables []model.DiningTable
	condition.Order("area ASC, table_no ASC").Find(&tables)

	response := &model.ResponseCustom{
		Rows:       tables,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateTable(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateTable").(model.CreateTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var count int64
	db.Model(&model.DiningTable{}).
		Where("area = ? AND table_no = ?", input.Area, input.TableNo).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.TABLE_EXISTS, errors.New("table exists"), "tableNo")
	}

	newTable := new(model.DiningTable)
	copier.Copy(&newTable, &input)
	if newTable.MaxPerson == 0 {
		newTable.MaxPerson = 4
	}

	if err := db.Create(&newTable).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newTable)
}

func EditTable(c *fiber.Ctx) error {
	db := database.DB
	tableId, ok := c.Locals("inputTableId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input := c.Locals("inputEditTable").(model.CreateTableInput)

	var table model.DiningTable
	if err := db.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var count int64
	db.Model(&model.DiningTable{}).
		Where("area = ? AND table_no = ? AND id <> ?", input.Area, input.TableNo, table.ID).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.TABLE_EXISTS, errors.New("table exists"), "tableNo")
	}

	table.Area = input.Area
	table.TableNo = input.TableNo
	if input.MaxPerson > 0 {
		table.MaxPerson = input.MaxPerson
	}

	if err := db.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func DeleteTable(c *fiber.Ctx) error {
	db := database.DB
	deleteIds, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var tables []model.DiningTable
	if err := db.Where("id IN ?", deleteIds.IDs).Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	for _, table := range tables {
		var activeCount int64
		db.Model(&model.Order{}).
			Where("table_area = ? AND table_no = ? AND status IN ?",
				table.Area, table.TableNo,
				[]string{constants.ORDER_SAVE, constants.ORDER_KOT}).
			Count(&activeCount)
		if activeCount > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_HAS_OPEN_ORDER, errors.New("table occupied"))
		}
	}

	if err := db.Delete(&model.DiningTable{}, deleteIds.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(tables)})
}

// GetFloorMap projects every table with its matching active order. Pure
// read; tables referenced only by Paid/Cancelled orders come back free.
func GetFloorMap(c *fiber.Ctx) error {
	db := database.DB

	var tables []model.DiningTable
	if err := db.Order("area ASC, table_no ASC").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var activeOrders []model.Order
	if err := db.
		Preload("Items").
		Where("status IN ? AND table_no IS NOT NULL",
			[]string{constants.ORDER_SAVE, constants.ORDER_KOT}).
		Find(&activeOrders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	byTable := make(map[string]*model.Order, len(activeOrders))
	for i := range activeOrders {
		order := &activeOrders[i]
		key := *order.TableArea + "/" + *order.TableNo
		byTable[key] = order
	}

	entries := make([]model.FloorMapEntry, 0, len(tables))
	for _, table := range tables {
		entries = append(entries, model.FloorMapEntry{
			Table:       table,
			ActiveOrder: byTable[table.Area+"/"+table.TableNo],
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}

// GetTableQR renders a QR PNG linking the table to the public menu.
func GetTableQR(c *fiber.Ctx) error {
	db := database.DB
	tableId := c.Locals("inputId").(int)

	var table model.DiningTable
	if err := db.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	homeUrl := config.ConfigDefault("HOME_URL", "http://localhost:3000")
	content := fmt.Sprintf("%s/menu?area=%s&table=%s", homeUrl, table.Area, table.TableNo)

	qrBytes, err := utils.GenerateQRCode(content, 400)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}
