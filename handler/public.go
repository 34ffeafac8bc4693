package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errMenuUnavailable = errors.New("restaurant not active")

func findActiveRestaurantBySlug(slug string) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := database.DB.Where("slug = ?", slug).First(&restaurant).Error; err != nil {
		return nil, err
	}
	if restaurant.Active == nil || !*restaurant.Active {
		return nil, errMenuUnavailable
	}
	return &restaurant, nil
}

func publicRestaurantError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errMenuUnavailable):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_UNAVAILABLE, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RESTAURANT_NOT_FOUND, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}

// GetPublicMenu serves the customer-facing menu: ordered categories and
// available dishes only. Responses are cached for a minute per slug; menu
// mutations invalidate eagerly.
func GetPublicMenu(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if payload, ok := helper.GetCachedMenu(c.Context(), slug); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(payload)
	}

	restaurant, err := findActiveRestaurantBySlug(slug)
	if err != nil {
		return publicRestaurantError(c, err)
	}

	var categories []model.Category
	if err := database.DB.
		Where("restaurant_id = ?", restaurant.ID).
		Order("position asc, id asc").
		Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var dishes []model.Dish
	if err := database.DB.
		Where("restaurant_id = ? AND available = ?", restaurant.ID, true).
		Order("position asc, id asc").
		Find(&dishes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	payload, err := json.Marshal(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"restaurant": restaurant,
			"categories": categories,
			"dishes":     dishes,
		},
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.SetCachedMenu(c.Context(), slug, payload)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

func generateOrderNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "CMD-" + token[:8]
}

// Checkout is the order composer: it rebuilds the cart server-side from the
// current dish rows (prices re-read at submission, not trusted from the
// client), persists client + order + items in one transaction, then returns
// the WhatsApp deep link for the storefront to open.
func Checkout(c *fiber.Ctx) error {
	slug := c.Params("slug")

	input, ok := c.Locals("inputCheckout").(model.CheckoutInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	restaurant, err := findActiveRestaurantBySlug(slug)
	if err != nil {
		return publicRestaurantError(c, err)
	}

	var cart model.Cart
	for _, line := range input.Items {
		var dish model.Dish
		if err := database.DB.
			Where("id = ? AND restaurant_id = ? AND available = ?", line.DishId, restaurant.ID, true).
			First(&dish).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Un plat du panier n'est plus disponible", err, "items")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		cart.AddQuantity(dish, line.Quantity)
	}
	if cart.IsEmpty() {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Le panier est vide", errors.New("empty cart"), "items")
	}

	var order model.Order
	var client model.Client

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Client upsert keyed by (restaurant, phone); the name is
		// last-write-wins.
		err := tx.Where("restaurant_id = ? AND phone = ?", restaurant.ID, input.Phone).
			First(&client).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			client = model.Client{
				RestaurantId: restaurant.ID,
				Name:         input.Name,
				Phone:        input.Phone,
			}
			if err := tx.Create(&client).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			client.Name = input.Name
		}

		order = model.Order{
			RestaurantId: restaurant.ID,
			ClientId:     &client.ID,
			Number:       generateOrderNumber(),
			Status:       constants.ORDER_STATUS_NEW,
			Type:         input.Type,
			Total:        cart.Total(),
			Comment:      input.Comment,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, pair := range cart.Items {
			dishId := pair.Dish.ID
			item := model.OrderItem{
				OrderId:   order.ID,
				DishId:    &dishId,
				DishName:  pair.Dish.Name,
				UnitPrice: pair.Dish.Price,
				Quantity:  pair.Quantity,
				Subtotal:  pair.Dish.Price * int64(pair.Quantity),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}

		client.OrderCount++
		client.TotalSpent += order.Total
		return tx.Save(&client).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible d'enregistrer la commande", err)
	}

	message := helper.BuildOrderMessage(restaurant.Name, order, client.Name, client.Phone)
	whatsappLink := helper.WhatsappLink(restaurant.Whatsapp, message)

	PublishOrderEvent(restaurant.ID, order, client)
	notifyOwnerByEmail(*restaurant, order, client)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"order":        order,
		"client":       client,
		"message":      message,
		"whatsappLink": whatsappLink,
	})
}

func notifyOwnerByEmail(restaurant model.Restaurant, order model.Order, client model.Client) {
	var account model.Account
	if err := database.DB.First(&account, restaurant.AccountId).Error; err != nil {
		return
	}

	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%s x%d : %s", item.DishName, item.Quantity, utils.FormatPrice(item.Subtotal)))
	}

	comment := ""
	if order.Comment != nil {
		comment = *order.Comment
	}

	utils.SendNewOrderEmail(account.Email, utils.NewOrderEmailData{
		OrderNumber: order.Number,
		Restaurant:  restaurant.Name,
		ClientName:  client.Name,
		ClientPhone: client.Phone,
		Type:        constants.ORDER_TYPE_LABELS[order.Type],
		Total:       utils.FormatPrice(order.Total),
		Comment:     comment,
		Lines:       lines,
	})
}
