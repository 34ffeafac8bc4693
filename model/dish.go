package model

type Dish struct {
	DTO
	RestaurantId uint    `gorm:"not null;index" json:"restaurantId"`
	CategoryId   *uint   `gorm:"index" json:"categoryId"`
	Name         string  `gorm:"not null" validate:"required" json:"name"`
	Description  *string `json:"description"`
	// Price in the smallest currency unit (F CFA has no subunit).
	Price     int64   `gorm:"not null" validate:"required,gt=0" json:"price"`
	ImageUrl  *string `json:"imageUrl"`
	Available bool    `gorm:"not null;default:true" json:"available"`
	Position  int     `gorm:"not null;default:0" json:"position"`

	Category *Category `gorm:"foreignKey:CategoryId" json:"category,omitempty"`
}

type CreateDishInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Price       int64   `json:"price" validate:"required,gt=0"`
	CategoryId  *uint   `json:"categoryId"`
	ImageUrl    *string `json:"imageUrl"`
	Available   *bool   `json:"available"`
	Position    *int    `json:"position"`
}

type EditDishInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" validate:"omitempty,gt=0"`
	CategoryId  *uint   `json:"categoryId"`
	ImageUrl    *string `json:"imageUrl"`
	Available   *bool   `json:"available"`
	Position    *int    `json:"position"`
}

type FilterDish struct {
	Pagination
	SearchKey  string `query:"searchKey" json:"searchKey"`
	CategoryId *uint  `query:"categoryId" json:"categoryId"`
	Available  *bool  `query:"available" json:"available"`
}
