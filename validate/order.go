package validate

import (
	"errors"
	"fmt"
	"strings"

	"resto_manager/constants"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Checkout validates the public order form before the composer runs: name,
// phone and a known fulfillment type, plus at least one cart line.
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckoutInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		input.Name = strings.TrimSpace(input.Name)
		input.Phone = strings.TrimSpace(input.Phone)

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if !utils.IsValidValueOfConstant(input.Type, constants.ORDER_TYPES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Type de commande invalide", errors.New("unknown order type"), "type")
		}

		c.Locals("inputCheckout", input)
		return c.Next()
	}
}

func UpdateOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if !utils.IsValidValueOfConstant(input.Status, constants.ORDER_STATUSES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Statut invalide", errors.New("unknown order status"), "status")
		}

		c.Locals("inputOrderStatus", input)
		return GetById(key)(c)
	}
}
