package model

type Order struct {
	DTO
	RestaurantId uint    `gorm:"not null;index" json:"restaurantId"`
	ClientId     *uint   `json:"clientId,omitempty"`
	Client       *Client `json:"client,omitempty"`
	// Numéro de commande, e.g. CMD-7F3A2C1B
	Number  string  `gorm:"uniqueIndex;size:20" json:"number"`
	Status  string  `gorm:"not null" json:"status"` // nouvelle, en_cours, prete, livree, annulee
	Type    string  `gorm:"not null" json:"type"`   // sur_place, emporter, livraison
	Total   int64   `gorm:"not null" json:"total"`
	Comment *string `json:"comment,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderId" json:"items,omitempty"`
}

// OrderItem snapshots the dish name and price at order time, so later menu
// edits do not rewrite order history.
type OrderItem struct {
	DTO
	OrderId   uint   `gorm:"not null;index" json:"orderId"`
	DishId    *uint  `json:"dishId,omitempty"`
	DishName  string `gorm:"not null" json:"dishName"`
	UnitPrice int64  `gorm:"not null" json:"unitPrice"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	Subtotal  int64  `gorm:"not null" json:"subtotal"`
}

type CheckoutItemInput struct {
	DishId   uint `json:"dishId" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gte=1"`
}

type CheckoutInput struct {
	Name    string              `json:"name" validate:"required"`
	Phone   string              `json:"phone" validate:"required"`
	Type    string              `json:"type" validate:"required"`
	Comment *string             `json:"comment"`
	Items   []CheckoutItemInput `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type FilterOrder struct {
	Pagination
	Status string `query:"status" json:"status"`
	Type   string `query:"type" json:"type"`
}
