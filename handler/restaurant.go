package handler

import (
	"errors"
	"strings"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetRestaurant(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalide", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, restaurant)
}

// EditRestaurant updates the owner settings. A name change regenerates the
// slug, so the public link printed on flyers only moves when the name does.
func EditRestaurant(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalide", err)
	}

	input, ok := c.Locals("inputEditRestaurant").(model.EditRestaurantInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	oldSlug := restaurant.Slug
	nameChanged := input.Name != nil && strings.TrimSpace(*input.Name) != restaurant.Name

	copier.CopyWithOption(restaurant, &input, copier.Option{IgnoreEmpty: true})
	restaurant.Name = strings.TrimSpace(restaurant.Name)

	if nameChanged {
		slug, err := helper.GenerateUniqueRestaurantSlug(database.DB, restaurant.Name, restaurant.ID)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Ce nom est déjà pris", err, "name")
		}
		restaurant.Slug = slug
	}

	if err := database.DB.Save(restaurant).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de sauvegarder les modifications", err)
	}

	helper.InvalidateMenuCache(c.Context(), oldSlug)
	helper.InvalidateMenuCache(c.Context(), restaurant.Slug)

	return utils.SuccessResponse(c, fiber.StatusOK, restaurant)
}
