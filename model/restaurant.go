package model

type Restaurant struct {
	DTO
	AccountId   uint    `gorm:"uniqueIndex;not null" json:"accountId"`
	Name        string  `gorm:"not null" validate:"required" json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	City        string  `gorm:"default:Cotonou" json:"city"`
	LogoUrl     *string `json:"logoUrl"`
	Whatsapp    string  `gorm:"not null" validate:"required" json:"whatsapp"`
	Active      *bool   `gorm:"not null;default:true" json:"active"`

	Categories []Category `gorm:"foreignKey:RestaurantId" json:"categories,omitempty"`
	Dishes     []Dish     `gorm:"foreignKey:RestaurantId" json:"dishes,omitempty"`
}

type EditRestaurantInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Whatsapp    *string `json:"whatsapp"`
}
