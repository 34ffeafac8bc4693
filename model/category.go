package model

type Category struct {
	DTO
	RestaurantId uint   `gorm:"not null;index" json:"restaurantId"`
	Name         string `gorm:"not null" validate:"required" json:"name"`
	Position     int    `gorm:"not null;default:0" json:"position"`
}

type CreateCategoryInput struct {
	Name     string `json:"name" validate:"required"`
	Position *int   `json:"position"`
}

type EditCategoryInput struct {
	Name     *string `json:"name"`
	Position *int    `json:"position"`
}
