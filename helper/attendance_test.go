package helper

import (
	"errors"
	"restro_manager/constants"
	"restro_manager/model"
	"testing"
)

func timePtr(s string) *string { return &s }

func TestCanCheckIn(t *testing.T) {
	if err := CanCheckIn(nil); err != nil {
		t.Errorf("no row should allow check-in, got %v", err)
	}

	absentRow := &model.Attendance{Status: constants.ATTENDANCE_ABSENT}
	if err := CanCheckIn(absentRow); err != nil {
		t.Errorf("auto-absent row without in_time should allow check-in, got %v", err)
	}

	checkedIn := &model.Attendance{
		Status: constants.ATTENDANCE_PRESENT,
		InTime: timePtr("09:00"),
	}
	if err := CanCheckIn(checkedIn); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Errorf("second check-in should fail with ErrAlreadyCheckedIn, got %v", err)
	}
}

func TestOpenForCheckOut(t *testing.T) {
	if err := OpenForCheckOut(nil); !errors.Is(err, ErrNotCheckedIn) {
		t.Errorf("check-out without a row should fail, got %v", err)
	}

	absentRow := &model.Attendance{Status: constants.ATTENDANCE_ABSENT}
	if err := OpenForCheckOut(absentRow); !errors.Is(err, ErrNotCheckedIn) {
		t.Errorf("check-out against absent row should fail, got %v", err)
	}

	open := &model.Attendance{
		Status: constants.ATTENDANCE_PRESENT,
		InTime: timePtr("09:00"),
	}
	if err := OpenForCheckOut(open); err != nil {
		t.Errorf("open row should allow check-out, got %v", err)
	}

	closed := &model.Attendance{
		Status:  constants.ATTENDANCE_PRESENT,
		InTime:  timePtr("09:00"),
		OutTime: timePtr("18:00"),
	}
	if err := OpenForCheckOut(closed); !errors.Is(err, ErrNotCheckedIn) {
		t.Errorf("second check-out should fail, got %v", err)
	}
}

func TestCanMarkAbsent(t *testing.T) {
	if err := CanMarkAbsent(nil); err != nil {
		t.Errorf("no row should allow marking absent, got %v", err)
	}

	existing := &model.Attendance{Status: constants.ATTENDANCE_PRESENT, InTime: timePtr("09:00")}
	if err := CanMarkAbsent(existing); !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("existing row should block marking absent, got %v", err)
	}

	absent := &model.Attendance{Status: constants.ATTENDANCE_ABSENT}
	if err := CanMarkAbsent(absent); !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("existing absent row should block marking absent again, got %v", err)
	}
}
