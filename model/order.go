package model

import "time"

type Order struct {
	DTO
	PublicCode     string      `gorm:"uniqueIndex;size:20" json:"publicCode"`
	OrderType      string      `gorm:"size:20;not null" json:"orderType"` // Dine In, Takeaway, Delivery
	OrderSource    string      `gorm:"size:20" json:"orderSource"`        // Manager, Captain, Waiter, QSR
	TableArea      *string     `gorm:"size:50;index:idx_order_table" json:"tableArea,omitempty"`
	TableNo        *string     `gorm:"size:10;index:idx_order_table" json:"tableNo,omitempty"`
	Token          *int        `json:"token,omitempty"` // QSR/takeaway daily ticket number
	CustomerName   string      `json:"customerName"`
	CustomerPhone  string      `json:"customerPhone"`
	Status         string      `gorm:"size:20;not null;index" json:"status"` // Save, KOT, Paid, Cancelled
	Items          []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
	SubTotal       float64     `json:"subTotal"`
	ChargeAmount   float64     `json:"chargeAmount"`
	DiscountAmount float64     `json:"discountAmount"`
	TotalAmount    float64     `json:"totalAmount"`
	PaidAmount     float64     `json:"paidAmount"`
	PaymentMethod  string      `gorm:"size:20" json:"paymentMethod"`
	OrderDate      time.Time   `gorm:"index" json:"orderDate"`
	CreatedBy      uint        `json:"createdBy"`
	KotAt          *time.Time  `json:"kotAt,omitempty"`
	PaidAt         *time.Time  `json:"paidAt,omitempty"`
	CancelledAt    *time.Time  `json:"cancelledAt,omitempty"`
}

type OrderItem struct {
	DTO
	OrderId      uint    `gorm:"not null;index" json:"orderId"`
	MenuItemId   *uint   `json:"menuItemId,omitempty"`
	DishName     string  `gorm:"not null" json:"dishName"`
	DishPrice    float64 `gorm:"not null" json:"dishPrice"` // price snapshot at order time
	Quantity     int     `gorm:"not null" json:"quantity"`
	Status       string  `gorm:"size:20;not null" json:"status"` // Preparing, Completed
	SpecialNotes string  `gorm:"type:text" json:"specialNotes"`
}

type OrderItemInput struct {
	MenuItemId   *uint   `json:"menuItemId"`
	DishName     string  `json:"dishName" validate:"required"`
	DishPrice    float64 `json:"dishPrice" validate:"gte=0"`
	Quantity     int     `json:"quantity" validate:"required,min=1"`
	SpecialNotes string  `json:"specialNotes"`
}

type CreateOrderInput struct {
	OrderType     string           `json:"orderType" validate:"required,oneof='Dine In' Takeaway Delivery"`
	OrderSource   string           `json:"orderSource" validate:"required,oneof=Manager Captain Waiter QSR"`
	TableArea     string           `json:"tableArea"`
	TableNo       string           `json:"tableNo"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	Items         []OrderItemInput `json:"items" validate:"dive"`
}

type UpdateOrderInput struct {
	CustomerName  *string          `json:"customerName"`
	CustomerPhone *string          `json:"customerPhone"`
	Items         []OrderItemInput `json:"items" validate:"omitempty,dive"`
}

type SettleOrderInput struct {
	PaidAmount     float64 `json:"paidAmount" validate:"gte=0"`
	DiscountAmount float64 `json:"discountAmount" validate:"gte=0"`
	PaymentMethod  string  `json:"paymentMethod" validate:"required,oneof=CASH CARD UPI"`
}

type DishStatusInput struct {
	Status string `json:"status" validate:"required,oneof=Preparing Completed"`
}

type FilterOrder struct {
	Pagination
	Status    string `json:"status"`
	OrderType string `json:"orderType"`
	SearchKey string `json:"searchKey"`
	From      string `json:"from"` // YYYY-MM-DD
	To        string `json:"to"`
}

// KotEvent is the invalidation payload published on the KOT channel.
// Clients re-fetch on receipt; the payload itself is not authoritative.
type KotEvent struct {
	Kind            string `json:"kind"`
	AffectedOrderId uint   `json:"affectedOrderId,omitempty"`
}
