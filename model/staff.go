package model

type Staff struct {
	DTO
	StaffCode      string       `gorm:"not null;uniqueIndex;size:20" validate:"required" json:"staffCode"`
	FirstName      string       `gorm:"not null" validate:"required" json:"firstName"`
	LastName       string       `json:"lastName"`
	Position       string       `json:"position"`
	PhoneNumber    string       `json:"phoneNumber"`
	Email          string       `json:"email"`
	IsActive       bool         `gorm:"not null;default:true" json:"isActive"`
	FaceDescriptor string       `gorm:"type:text" json:"-"` // JSON array of 128 floats, empty when not enrolled
	Attendance     []Attendance `gorm:"foreignKey:StaffId" json:"attendance,omitempty"`
}

type Staffs []Staff

// One row per staff member per calendar date. Date is YYYY-MM-DD,
// times are HH:MM; absent rows carry neither time.
type Attendance struct {
	DTO
	StaffId uint    `gorm:"not null;index;uniqueIndex:idx_staff_date" json:"staffId"`
	Date    string  `gorm:"size:10;not null;uniqueIndex:idx_staff_date" json:"date"`
	Status  string  `gorm:"size:10;not null" json:"status"`
	InTime  *string `gorm:"size:5" json:"inTime,omitempty"`
	OutTime *string `gorm:"size:5" json:"outTime,omitempty"`
}

type CreateStaffInput struct {
	StaffCode   string `json:"staffCode" validate:"required"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName"`
	Position    string `json:"position"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type FilterStaff struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Position  string `json:"position"`
	Active    *bool  `json:"active"`
}

type RegisterFaceInput struct {
	Descriptor []float64 `json:"descriptor" validate:"required,min=2"`
}

type IdentifyInput struct {
	Descriptor []float64 `json:"descriptor" validate:"required,min=2"`
}

type CheckInInput struct {
	StaffId uint   `json:"staffId" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	InTime  string `json:"inTime" validate:"required,datetime=15:04"`
}

type CheckOutInput struct {
	StaffId uint   `json:"staffId" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	OutTime string `json:"outTime" validate:"required,datetime=15:04"`
}

type MarkAbsentInput struct {
	StaffId uint   `json:"staffId" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
}

type FilterAttendance struct {
	StaffId *uint  `json:"staffId"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Status  string `json:"status"`
}
