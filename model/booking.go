package model

import "time"

type Room struct {
	DTO
	RoomNo       string  `gorm:"not null;uniqueIndex;size:10" validate:"required" json:"roomNo"`
	RoomType     string  `gorm:"size:30" json:"roomType"`
	Price        float64 `gorm:"not null" validate:"gte=0" json:"price"` // per night
	MaxOccupancy int     `gorm:"not null;default:2" json:"maxOccupancy"`
	Status       string  `gorm:"size:20;not null;default:'Available'" json:"status"`
	Description  string  `gorm:"type:text" json:"description"`
}

type Booking struct {
	DTO
	PublicCode   string     `gorm:"uniqueIndex;size:20" json:"publicCode"`
	CustomerId   uint       `gorm:"not null;index" json:"customerId"`
	Customer     *Customer  `gorm:"foreignKey:CustomerId" json:"customer,omitempty"`
	RoomId       uint       `gorm:"not null;index" json:"roomId"`
	Room         *Room      `gorm:"foreignKey:RoomId" json:"room,omitempty"`
	CheckIn      time.Time  `gorm:"not null" json:"checkIn"`
	CheckOut     time.Time  `gorm:"not null" json:"checkOut"`
	Guests       int        `gorm:"default:1" json:"guests"`
	Status       string     `gorm:"size:20;not null;index" json:"status"` // Booked, Checked In, Checked Out, Cancelled
	TotalPrice   float64    `json:"totalPrice"`
	CheckedInAt  *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt *time.Time `json:"checkedOutAt,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
}

type CreateRoomInput struct {
	RoomNo       string  `json:"roomNo" validate:"required"`
	RoomType     string  `json:"roomType"`
	Price        float64 `json:"price" validate:"gte=0"`
	MaxOccupancy int     `json:"maxOccupancy" validate:"omitempty,min=1"`
	Description  string  `json:"description"`
}

type CreateBookingInput struct {
	CustomerId uint   `json:"customerId" validate:"required"`
	RoomId     uint   `json:"roomId" validate:"required"`
	CheckIn    string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests     int    `json:"guests" validate:"omitempty,min=1"`
}

type FilterBooking struct {
	Pagination
	Status     string `json:"status"`
	CustomerId *uint  `json:"customerId"`
	RoomId     *uint  `json:"roomId"`
	From       string `json:"from"`
	To         string `json:"to"`
}
