package model

// Charge is a named tax or service charge folded into order totals.
// Percent charges apply to the sub total, fixed charges add as-is.
type Charge struct {
	DTO
	Name       string  `gorm:"not null;uniqueIndex" validate:"required" json:"name"`
	ChargeType string  `gorm:"size:10;not null" json:"chargeType"` // percent, fixed
	Value      float64 `gorm:"not null" validate:"gte=0" json:"value"`
	IsActive   bool    `gorm:"not null;default:true" json:"isActive"`
}

type CreateChargeInput struct {
	Name       string  `json:"name" validate:"required"`
	ChargeType string  `json:"chargeType" validate:"required,oneof=percent fixed"`
	Value      float64 `json:"value" validate:"gte=0"`
	IsActive   *bool   `json:"isActive"`
}
