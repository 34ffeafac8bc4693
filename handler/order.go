package handler

import (
	"errors"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetOrders lists the restaurant's orders newest first, filterable by status
// and type.
func GetOrders(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	filter := new(model.FilterOrder)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	query := database.DB.Where("restaurant_id = ?", restaurant.ID)
	if filter.Status != "" {
		if !utils.IsValidValueOfConstant(filter.Status, constants.ORDER_STATUSES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Statut de commande invalide", errors.New("unknown status"), "status")
		}
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		if !utils.IsValidValueOfConstant(filter.Type, constants.ORDER_TYPES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Type de commande invalide", errors.New("unknown type"), "type")
		}
		query = query.Where("type = ?", filter.Type)
	}

	var totalCount int64
	if err := query.Model(&model.Order{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var orders []model.Order
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Preload("Items").
		Preload("Client").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetOrder(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.
		Where("id = ? AND restaurant_id = ?", orderId, restaurant.ID).
		Preload("Items").
		Preload("Client").
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Commande introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrderStatus moves an order along the board. Any status to any status
// is allowed; cancelling rolls the client counters back.
func UpdateOrderStatus(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	orderId := c.Locals("inputId").(int)
	input := c.Locals("inputOrderStatus").(model.UpdateOrderStatusInput)

	var order model.Order
	if err := database.DB.
		Where("id = ? AND restaurant_id = ?", orderId, restaurant.ID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Commande introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	previous := order.Status
	if previous == input.Status {
		return utils.SuccessResponse(c, fiber.StatusOK, order)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		order.Status = input.Status
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		if order.ClientId == nil {
			return nil
		}

		// Counters track non-cancelled orders only.
		if input.Status == constants.ORDER_STATUS_CANCELLED && previous != constants.ORDER_STATUS_CANCELLED {
			return tx.Model(&model.Client{}).
				Where("id = ?", *order.ClientId).
				Updates(map[string]interface{}{
					"order_count": gorm.Expr("order_count - 1"),
					"total_spent": gorm.Expr("total_spent - ?", order.Total),
				}).Error
		}
		if previous == constants.ORDER_STATUS_CANCELLED && input.Status != constants.ORDER_STATUS_CANCELLED {
			return tx.Model(&model.Client{}).
				Where("id = ?", *order.ClientId).
				Updates(map[string]interface{}{
					"order_count": gorm.Expr("order_count + 1"),
					"total_spent": gorm.Expr("total_spent + ?", order.Total),
				}).Error
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
