package handler

import (
	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetClients lists the restaurant's client book, best customers first.
func GetClients(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	query := database.DB.Where("restaurant_id = ?", restaurant.ID)

	var totalCount int64
	if err := query.Model(&model.Client{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var clients []model.Client
	if err := utils.ApplyPagination(query, pagination.Limit, pagination.Page).
		Order("order_count desc, total_spent desc, id asc").
		Find(&clients).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       clients,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}
