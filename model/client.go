package model

type Client struct {
	DTO
	RestaurantId uint    `gorm:"not null;uniqueIndex:idx_client_resto_phone" json:"restaurantId"`
	Name         string  `gorm:"not null" json:"name"`
	Phone        string  `gorm:"not null;uniqueIndex:idx_client_resto_phone" json:"phone"`
	Address      *string `json:"address"`
	// Cumulative counters, kept in step with orders inside the checkout
	// transaction and reconciled nightly.
	OrderCount int   `gorm:"not null;default:0" json:"orderCount"`
	TotalSpent int64 `gorm:"not null;default:0" json:"totalSpent"`
}
