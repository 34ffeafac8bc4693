package model

type Account struct {
	DTO
	Email    string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Active   bool   `gorm:"not null;default:true" json:"active"`

	Restaurant *Restaurant `gorm:"foreignKey:AccountId" json:"restaurant,omitempty"`
}

type RegisterInput struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6,max=72"`
	RestaurantName string `json:"restaurantName" validate:"required"`
	Whatsapp       string `json:"whatsapp" validate:"required"`
	City           string `json:"city"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
