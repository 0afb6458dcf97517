package model

type MenuCategory struct {
	DTO
	Name  string     `gorm:"not null;uniqueIndex" validate:"required" json:"name"`
	Slug  string     `gorm:"not null;uniqueIndex" json:"slug"`
	Items []MenuItem `gorm:"foreignKey:CategoryId" json:"items,omitempty"`
}

type MenuItem struct {
	DTO
	Name        string        `gorm:"not null" validate:"required" json:"name"`
	Slug        string        `gorm:"not null;uniqueIndex" json:"slug"`
	Price       float64       `gorm:"not null" validate:"gte=0" json:"price"`
	CategoryId  uint          `gorm:"not null;index" json:"categoryId"`
	Category    *MenuCategory `gorm:"foreignKey:CategoryId" json:"category,omitempty"`
	IsVeg       bool          `gorm:"default:false" json:"isVeg"`
	IsAvailable bool          `gorm:"not null;default:true" json:"isAvailable"`
	Description string        `gorm:"type:text" json:"description"`
}

type CreateCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

type CreateMenuItemInput struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryId  uint    `json:"categoryId" validate:"required"`
	IsVeg       bool    `json:"isVeg"`
	IsAvailable *bool   `json:"isAvailable"`
	Description string  `json:"description"`
}

type FilterMenu struct {
	Pagination
	CategoryId *uint  `json:"categoryId"`
	SearchKey  string `json:"searchKey"`
	Available  *bool  `json:"available"`
}
