package helper

import (
	"errors"
	"log"
	"restro_manager/constants"
	"restro_manager/database"
	"restro_manager/model"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var (
	ErrAlreadyCheckedIn = errors.New("already checked in")
	ErrNotCheckedIn     = errors.New("not checked in")
	ErrDuplicateEntry   = errors.New("attendance entry already exists")
)

// CanCheckIn decides what a check-in may do with the day's existing row:
// no row (or an absent row without in_time) is fine, anything with an
// in_time already recorded is rejected.
func CanCheckIn(existing *model.Attendance) error {
	if existing == nil {
		return nil
	}
	if existing.InTime != nil {
		return ErrAlreadyCheckedIn
	}
	return nil
}

// OpenForCheckOut requires a row with in_time set and out_time unset.
func OpenForCheckOut(existing *model.Attendance) error {
	if existing == nil || existing.InTime == nil || existing.OutTime != nil {
		return ErrNotCheckedIn
	}
	return nil
}

func CanMarkAbsent(existing *model.Attendance) error {
	if existing != nil {
		return ErrDuplicateEntry
	}
	return nil
}

var attendanceScheduler gocron.Scheduler

// AutoMarkAbsent inserts an absent row for every active staff member
// without an attendance entry for today.
func AutoMarkAbsent() {
	log.Println("[CRON] AutoMarkAbsent triggered")

	db := database.DB
	today := time.Now().Format("2006-01-02")

	var staffs []model.Staff
	if err := db.Where("is_active = ?", true).Find(&staffs).Error; err != nil {
		log.Printf("Failed to scan staff for auto-absent: %v", err)
		return
	}

	for _, staff := range staffs {
		var count int64
		db.Model(&model.Attendance{}).
			Where("staff_id = ? AND date = ?", staff.ID, today).
			Count(&count)
		if count > 0 {
			continue
		}

		entry := model.Attendance{
			StaffId: staff.ID,
			Date:    today,
			Status:  constants.ATTENDANCE_ABSENT,
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("Failed to mark staff %s absent: %v", staff.StaffCode, err)
		}
	}
}

func StartAttendanceScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		log.Fatal(err)
	}

	attendanceScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(23, 55, 0),
			),
		),
		gocron.NewTask(AutoMarkAbsent),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Attendance scheduler started (daily 23:55)")
}

func StopAttendanceScheduler() {
	if attendanceScheduler != nil {
		attendanceScheduler.Shutdown()
		log.Println("Attendance scheduler stopped")
	}
}
