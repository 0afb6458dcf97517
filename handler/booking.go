package handler

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/helper"
	"restro_manager/model"
	"restro_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetRooms(c *fiber.Ctx) error {
	db := database.DB

	var rooms []model.Room
	if err := db.Order("room_no ASC").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

func CreateRoom(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateRoom").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var count int64
	db.Model(&model.Room{}).Where("room_no = ?", input.RoomNo).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.ROOM_EXISTS, errors.New("room exists"), "roomNo")
	}

	room := model.Room{
		RoomNo:       input.RoomNo,
		RoomType:     input.RoomType,
		Price:        input.Price,
		MaxOccupancy: input.MaxOccupancy,
		Status:       constants.ROOM_AVAILABLE,
		Description:  input.Description,
	}
	if room.MaxOccupancy == 0 {
		room.MaxOccupancy = 2
	}

	if err := db.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func EditRoom(c *fiber.Ctx) error {
	db := database.DB
	roomId, ok := c.Locals("inputRoomId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input := c.Locals("inputEditRoom").(model.CreateRoomInput)

	var room model.Room
	if err := db.First(&room, roomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var count int64
	db.Model(&model.Room{}).
		Where("room_no = ? AND id <> ?", input.RoomNo, room.ID).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.ROOM_EXISTS, errors.New("room exists"), "roomNo")
	}

	room.RoomNo = input.RoomNo
	room.RoomType = input.RoomType
	room.Price = input.Price
	room.Description = input.Description
	if input.MaxOccupancy > 0 {
		room.MaxOccupancy = input.MaxOccupancy
	}

	if err := db.Save(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func DeleteRoom(c *fiber.Ctx) error {
	db := database.DB
	deleteIds, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var activeCount int64
	db.Model(&model.Booking{}).
		Where("room_id IN ? AND status IN ?", deleteIds.IDs,
			[]string{constants.BOOKING_BOOKED, constants.BOOKING_CHECKED_IN}).
		Count(&activeCount)
	if activeCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_UNAVAILABLE, errors.New("room has active booking"))
	}

	if err := db.Delete(&model.Room{}, deleteIds.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(deleteIds.IDs)})
}

func overlappingBookings(tx *gorm.DB, roomId uint, checkIn, checkOut time.Time, excludeId uint) int64 {
	var count int64
	tx.Model(&model.Booking{}).
		Where("room_id = ? AND status IN ? AND check_in < ? AND check_out > ? AND id <> ?",
			roomId,
			[]string{constants.BOOKING_BOOKED, constants.BOOKING_CHECKED_IN},
			checkOut, checkIn, excludeId).
		Count(&count)
	return count
}

func GetBookings(c *fiber.Ctx) error {
	filterInput := new(model.FilterBooking)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Booking{})
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.CustomerId != nil {
		condition = condition.Where("customer_id = ?", *filterInput.CustomerId)
	}
	if filterInput.RoomId != nil {
		condition = condition.Where("room_id = ?", *filterInput.RoomId)
	}
	if filterInput.From != "" && filterInput.To != "" {
		condition = condition.Where("check_in >= ? AND check_in <= ?", filterInput.From, filterInput.To)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var bookings []model.Booking
	condition.Preload("Customer").Preload("Room").Order("check_in DESC").Find(&bookings)

	response := &model.ResponseCustom{
		Rows:       bookings,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateBooking(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateBooking").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	checkIn, _ := time.Parse("2006-01-02", input.CheckIn)
	checkOut, _ := time.Parse("2006-01-02", input.CheckOut)

	var customer model.Customer
	if err := db.First(&customer, input.CustomerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var booking *model.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, input.RoomId).Error; err != nil {
			return err
		}

		if overlappingBookings(tx, room.ID, checkIn, checkOut, 0) > 0 {
			return errors.New("room unavailable")
		}

		nights := int(checkOut.Sub(checkIn).Hours() / 24)
		if nights < 1 {
			nights = 1
		}

		booking = &model.Booking{
			PublicCode: helper.GenerateBookingCode(),
			CustomerId: customer.ID,
			RoomId:     room.ID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Guests:     input.Guests,
			Status:     constants.BOOKING_BOOKED,
			TotalPrice: float64(nights) * room.Price,
		}
		if booking.Guests == 0 {
			booking.Guests = 1
		}
		return tx.Create(booking).Error
	})

	if err != nil {
		if err.Error() == "room unavailable" {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_UNAVAILABLE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Customer").Preload("Room").First(booking, booking.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// CheckInBooking moves a booking to Checked In and marks the room occupied.
func CheckInBooking(c *fiber.Ctx) error {
	db := database.DB
	bookingId := c.Locals("inputId").(int)

	var booking model.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingId).Error; err != nil {
			return err
		}
		if booking.Status != constants.BOOKING_BOOKED {
			return helper.ErrInvalidTransition
		}

		now := time.Now()
		booking.Status = constants.BOOKING_CHECKED_IN
		booking.CheckedInAt = &now
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		return tx.Model(&model.Room{}).
			Where("id = ?", booking.RoomId).
			Update("status", constants.ROOM_OCCUPIED).Error
	})

	if err != nil {
		if errors.Is(err, helper.ErrInvalidTransition) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CheckOutBooking(c *fiber.Ctx) error {
	db := database.DB
	bookingId := c.Locals("inputId").(int)

	var booking model.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingId).Error; err != nil {
			return err
		}
		if booking.Status != constants.BOOKING_CHECKED_IN {
			return helper.ErrInvalidTransition
		}

		now := time.Now()
		booking.Status = constants.BOOKING_CHECKED_OUT
		booking.CheckedOutAt = &now
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		return tx.Model(&model.Room{}).
			Where("id = ?", booking.RoomId).
			Update("status", constants.ROOM_AVAILABLE).Error
	})

	if err != nil {
		if errors.Is(err, helper.ErrInvalidTransition) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CancelBooking(c *fiber.Ctx) error {
	db := database.DB
	bookingId := c.Locals("inputId").(int)

	var booking model.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingId).Error; err != nil {
			return err
		}
		if booking.Status == constants.BOOKING_CHECKED_OUT || booking.Status == constants.BOOKING_CANCELLED {
			return helper.ErrInvalidTransition
		}

		wasCheckedIn := booking.Status == constants.BOOKING_CHECKED_IN
		now := time.Now()
		booking.Status = constants.BOOKING_CANCELLED
		booking.CancelledAt = &now
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if wasCheckedIn {
			return tx.Model(&model.Room{}).
				Where("id = ?", booking.RoomId).
				Update("status", constants.ROOM_AVAILABLE).Error
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, helper.ErrInvalidTransition) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}
