package handler

import (
	"errors"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetDishes(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalide", err)
	}

	var filter model.FilterDish
	c.QueryParser(&filter)

	query := database.DB.
		Preload("Category").
		Where("restaurant_id = ?", restaurant.ID)
	if filter.CategoryId != nil {
		query = query.Where("category_id = ?", *filter.CategoryId)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}
	if filter.SearchKey != "" {
		query = query.Where("name ILIKE ?", "%"+filter.SearchKey+"%")
	}

	var totalCount int64
	query.Model(&model.Dish{}).Count(&totalCount)

	var dishes []model.Dish
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("position asc, id asc").
		Find(&dishes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       dishes,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateDish(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalide", err)
	}

	input, ok := c.Locals("inputCreateDish").(model.CreateDishInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	if input.CategoryId != nil {
		var category model.Category
		if err := database.DB.
			Where("id = ? AND restaurant_id = ?", *input.CategoryId, restaurant.ID).
			First(&category).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Catégorie inconnue", err, "categoryId")
		}
	}

	var dish model.Dish
	copier.Copy(&dish, &input)
	dish.RestaurantId = restaurant.ID
	if input.Available == nil {
		dish.Available = true
	}
	if input.Position == nil {
		var maxPosition int
		database.DB.Model(&model.Dish{}).
			Where("restaurant_id = ?", restaurant.ID).
			Select("COALESCE(MAX(position), 0)").Scan(&maxPosition)
		dish.Position = maxPosition + 1
	}

	if err := database.DB.Create(&dish).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de créer le plat", err)
	}

	helper.InvalidateMenuCache(c.Context(), restaurant.Slug)
	return utils.SuccessResponse(c, fiber.StatusCreated, dish)
}

func EditDish(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalide", err)
	}

	input, _ := c.Locals("inputEditDish").(model.EditDishInput)
	dishId, _ := c.Locals("inputDishId").(uint)

	var dish model.Dish
	if err := database.DB.
		Where("id = ? AND restaurant_id = ?", dishId, restaurant.ID).
		First(&dish).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Plat introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.CategoryId != nil {
		var category model.Category
		if err := database.DB.
			Where("id = ? AND restaurant_id = ?", *input.CategoryId, restaurant.ID).
			First(&category).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Catégorie inconnue", err, "categoryId")
		}
	}

	copier.CopyWithOption(&dish, &input, copier.Option{IgnoreEmpty: true})
	if input.Available != nil {
		dish.Available = *input.Available
	}

	if err := database.DB.Save(&dish).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de modifier le plat", err)
	}

	helper.InvalidateMenuCache(c.Context(), restaurant.Slug)
	return utils.SuccessResponse(c, fiber.StatusOK, dish)
}

func DeleteDish(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalide", err)
	}

	dishId, _ := c.Locals("inputId").(int)

	var dish model.Dish
	if err := database.DB.
		Where("id = ? AND restaurant_id = ?", dishId, restaurant.ID).
		First(&dish).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Plat introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Delete(&dish).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de supprimer le plat", err)
	}

	helper.InvalidateMenuCache(c.Context(), restaurant.Slug)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": dish.ID})
}
