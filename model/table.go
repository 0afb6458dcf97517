package model

// DiningTable belongs to exactly one free-text area ("AC Hall", "Terrace").
// (Area, TableNo) is unique; the table itself never carries order state.
type DiningTable struct {
	DTO
	Area      string `gorm:"not null;uniqueIndex:idx_area_table;size:50" validate:"required" json:"area"`
	TableNo   string `gorm:"not null;uniqueIndex:idx_area_table;size:10" validate:"required" json:"tableNo"`
	MaxPerson int    `gorm:"not null;default:4" json:"maxPerson"`
}

type CreateTableInput struct {
	Area      string `json:"area" validate:"required"`
	TableNo   string `json:"tableNo" validate:"required"`
	MaxPerson int    `json:"maxPerson" validate:"omitempty,min=1"`
}

type FilterTable struct {
	Pagination
	Area      string `json:"area"`
	SearchKey string `json:"searchKey"`
}

// FloorMapEntry pairs a table with its current active order, if any.
type FloorMapEntry struct {
	Table       DiningTable `json:"table"`
	ActiveOrder *Order      `json:"activeOrder"`
}
