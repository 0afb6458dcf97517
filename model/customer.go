package model

type Customer struct {
	DTO
	Name    string `gorm:"not null" validate:"required" json:"name"`
	Phone   string `gorm:"uniqueIndex;size:20" json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	IdProof string `json:"idProof"`
}

type CreateCustomerInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,min=7"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	IdProof string `json:"idProof"`
}

type FilterCustomer struct {
	Pagination
	SearchKey string `json:"searchKey"`
}
