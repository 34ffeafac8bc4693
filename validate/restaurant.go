package validate

import (
	"errors"
	"fmt"
	"strings"

	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func EditRestaurant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditRestaurantInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Name and whatsapp may be omitted (unchanged) but never blanked.
		if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Le nom est obligatoire", errors.New("empty name"), "name")
		}
		if input.Whatsapp != nil && strings.TrimSpace(*input.Whatsapp) == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Le numéro WhatsApp est obligatoire", errors.New("empty whatsapp"), "whatsapp")
		}

		c.Locals("inputEditRestaurant", input)
		return c.Next()
	}
}
