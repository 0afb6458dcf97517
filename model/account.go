package model

import "time"

type Account struct {
	DTO
	Username string `gorm:"not null;uniqueIndex;size:50" validate:"required" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Email    string `json:"email"`
	Role     string `gorm:"not null" json:"role"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive"`
	StaffId  *uint  `json:"staffId"`
	Staff    *Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:StaffId" json:"staff,omitempty"`
}

type PasswordResetToken struct {
	DTO
	Email     string    `gorm:"index;not null" json:"email"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type SendOtpInput struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOtpInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type ResetPasswordInput struct {
	Email          string `json:"email" validate:"required,email"`
	Code           string `json:"code" validate:"required,len=6"`
	NewPassword    string `json:"newPassword" validate:"required,min=6"`
	RepeatPassword string `json:"repeatPassword" validate:"required,min=6"`
}

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=4"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required"`
	StaffId  *uint  `json:"staffId"`
}
