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

func GetCategories(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalide", err)
	}

	var categories []model.Category
	if err := database.DB.
		Where("restaurant_id = ?", restaurant.ID).
		Order("position asc, id asc").
		Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalide", err)
	}

	input, ok := c.Locals("inputCreateCategory").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	category := model.Category{
		RestaurantId: restaurant.ID,
		Name:         input.Name,
	}
	if input.Position != nil {
		category.Position = *input.Position
	} else {
		// Append at the end: ties on position fall back to insertion order.
		var maxPosition int
		database.DB.Model(&model.Category{}).
			Where("restaurant_id = ?", restaurant.ID).
			Select("COALESCE(MAX(position), 0)").Scan(&maxPosition)
		category.Position = maxPosition + 1
	}

	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de créer la catégorie", err)
	}

	helper.InvalidateMenuCache(c.Context(), restaurant.Slug)
	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func EditCategory(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalide", err)
	}

	input, _ := c.Locals("inputEditCategory").(model.EditCategoryInput)
	categoryId, _ := c.Locals("inputCategoryId").(uint)

	var category model.Category
	if err := database.DB.
		Where("id = ? AND restaurant_id = ?", categoryId, restaurant.ID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Catégorie introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	copier.CopyWithOption(&category, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de modifier la catégorie", err)
	}

	helper.InvalidateMenuCache(c.Context(), restaurant.Slug)
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

// DeleteCategory refuses to delete a category that still has dishes: the
// owner moves or deletes the dishes first.
func DeleteCategory(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalide", err)
	}

	categoryId, _ := c.Locals("inputId").(int)

	var category model.Category
	if err := database.DB.
		Where("id = ? AND restaurant_id = ?", categoryId, restaurant.ID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Catégorie introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var dishCount int64
	if err := database.DB.Model(&model.Dish{}).
		Where("category_id = ?", category.ID).
		Count(&dishCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if dishCount > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict,
			"Des plats utilisent encore cette catégorie", errors.New("category still referenced"), "categoryId")
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de supprimer la catégorie", err)
	}

	helper.InvalidateMenuCache(c.Context(), restaurant.Slug)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": category.ID})
}
