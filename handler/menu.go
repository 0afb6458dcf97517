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
)

func GetCategories(c *fiber.Ctx) error {
	db := database.DB

	var categories []model.MenuCategory
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateCategory").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var count int64
	db.Model(&model.MenuCategory{}).Where("LOWER(name) = ?", strings.ToLower(input.Name)).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.CATEGORY_EXISTS, errors.New("category exists"), "name")
	}

	category := model.MenuCategory{
		Name: input.Name,
		Slug: helper.GenerateUniqueCategorySlug(db, input.Name),
	}

	if err := db.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func GetMenuItems(c *fiber.Ctx) error {
	filterInput := new(model.FilterMenu)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.MenuItem{})
	if filterInput.CategoryId != nil {
		condition = condition.Where("category_id = ?", *filterInput.CategoryId)
	}
	if filterInput.Available != nil {
		condition = condition.Where("is_available = ?", *filterInput.Available)
	}
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var items []model.MenuItem
	condition.Preload("Category").Order("name ASC").Find(&items)

	response := &model.ResponseCustom{
		Rows:       items,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateMenuItem(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateMenuItem").(model.CreateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var category model.MenuCategory
	if err := db.First(&category, input.CategoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var count int64
	db.Model(&model.MenuItem{}).
		Where("LOWER(name) = ? AND category_id = ?", strings.ToLower(input.Name), input.CategoryId).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DISH_EXISTS, errors.New("dish exists"), "name")
	}

	newItem := new(model.MenuItem)
	copier.Copy(&newItem, &input)
	newItem.Slug = helper.GenerateUniqueDishSlug(db, input.Name)
	newItem.IsAvailable = true
	if input.IsAvailable != nil {
		newItem.IsAvailable = *input.IsAvailable
	}

	if err := db.Create(&newItem).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Category").First(newItem, newItem.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, newItem)
}

func EditMenuItem(c *fiber.Ctx) error {
	db := database.DB
	itemId, ok := c.Locals("inputMenuItemId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input := c.Locals("inputEditMenuItem").(model.CreateMenuItemInput)

	var item model.MenuItem
	if err := db.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if !strings.EqualFold(item.Name, input.Name) {
		item.Slug = helper.GenerateUniqueDishSlug(db, input.Name)
	}
	item.Name = input.Name
	item.Price = input.Price
	item.CategoryId = input.CategoryId
	item.IsVeg = input.IsVeg
	item.Description = input.Description
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := db.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	db.Preload("Category").First(&item, item.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteMenuItem(c *fiber.Ctx) error {
	db := database.DB
	deleteIds, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if err := db.Delete(&model.MenuItem{}, deleteIds.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(deleteIds.IDs)})
}

// GetPublicMenu is the unauthenticated menu behind the table QR codes:
// available dishes grouped under category slugs.
func GetPublicMenu(c *fiber.Ctx) error {
	db := database.DB

	var categories []model.MenuCategory
	if err := db.
		Preload("Items", "is_available = ?", true).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := []fiber.Map{}
	for _, category := range categories {
		if len(category.Items) == 0 {
			continue
		}
		dishes := []fiber.Map{}
		for _, item := range category.Items {
			dishes = append(dishes, fiber.Map{
				"name":        item.Name,
				"slug":        item.Slug,
				"price":       item.Price,
				"isVeg":       item.IsVeg,
				"description": item.Description,
			})
		}
		response = append(response, fiber.Map{
			"category": category.Name,
			"slug":     category.Slug,
			"dishes":   dishes,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}
