package handler

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/helper"
	"restro_manager/model"
	"restro_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func findAttendance(tx *gorm.DB, staffId uint, date string) (*model.Attendance, error) {
	var entry model.Attendance
	err := tx.Where("staff_id = ? AND date = ?", staffId, date).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func CheckIn(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCheckIn").(model.CheckInInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var staff model.Staff
	if err := db.First(&staff, input.StaffId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var entry *model.Attendance
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := findAttendance(tx, input.StaffId, input.Date)
		if err != nil {
			return err
		}

		if err := helper.CanCheckIn(existing); err != nil {
			return err
		}

		if existing != nil {
			// An auto-absent row gets overwritten by a late check-in.
			existing.Status = constants.ATTENDANCE_PRESENT
			existing.InTime = &input.InTime
			entry = existing
			return tx.Save(existing).Error
		}

		entry = &model.Attendance{
			StaffId: input.StaffId,
			Date:    input.Date,
			Status:  constants.ATTENDANCE_PRESENT,
			InTime:  &input.InTime,
		}
		return tx.Create(entry).Error
	})

	if err != nil {
		if errors.Is(err, helper.ErrAlreadyCheckedIn) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ALREADY_CHECKED_IN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, entry)
}

func CheckOut(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCheckOut").(model.CheckOutInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var entry *model.Attendance
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := findAttendance(tx, input.StaffId, input.Date)
		if err != nil {
			return err
		}

		if err := helper.OpenForCheckOut(existing); err != nil {
			return err
		}

		existing.OutTime = &input.OutTime
		entry = existing
		return tx.Save(existing).Error
	})

	if err != nil {
		if errors.Is(err, helper.ErrNotCheckedIn) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NOT_CHECKED_IN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, entry)
}

func MarkAbsent(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputMarkAbsent").(model.MarkAbsentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var entry *model.Attendance
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := findAttendance(tx, input.StaffId, input.Date)
		if err != nil {
			return err
		}

		if err := helper.CanMarkAbsent(existing); err != nil {
			return err
		}

		entry = &model.Attendance{
			StaffId: input.StaffId,
			Date:    input.Date,
			Status:  constants.ATTENDANCE_ABSENT,
		}
		return tx.Create(entry).Error
	})

	if err != nil {
		if errors.Is(err, helper.ErrDuplicateEntry) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_ATTENDANCE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, entry)
}

func GetAttendance(c *fiber.Ctx) error {
	filterInput := new(model.FilterAttendance)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Attendance{})
	if filterInput.StaffId != nil {
		condition = condition.Where("staff_id = ?", *filterInput.StaffId)
	}
	if filterInput.Start != "" && filterInput.End != "" {
		condition = condition.Where("date >= ? AND date <= ?", filterInput.Start, filterInput.End)
	}
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}

	var rows []model.Attendance
	if err := condition.Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// Identify matches a captured face descriptor against enrolled staff.
func Identify(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputIdentify").(model.IdentifyInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var staffs []model.Staff
	if err := db.Where("is_active = ? AND face_descriptor <> ''", true).Find(&staffs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	candidates := make([]helper.FaceCandidate, 0, len(staffs))
	byId := make(map[uint]model.Staff, len(staffs))
	for _, staff := range staffs {
		descriptor, err := helper.DecodeDescriptor(staff.FaceDescriptor)
		if err != nil {
			continue
		}
		candidates = append(candidates, helper.FaceCandidate{StaffId: staff.ID, Descriptor: descriptor})
		byId[staff.ID] = staff
	}

	staffId, distance, matched := helper.MatchFace(input.Descriptor, candidates)
	if !matched {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FACE_NO_MATCH, errors.New("no match"))
	}

	staff := byId[staffId]
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"staff":    staff,
		"distance": distance,
	})
}
