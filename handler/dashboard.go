package handler

import (
	"time"

	"resto_manager/config"
	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func publicMenuURL(slug string) string {
	base := config.ConfigOr("PUBLIC_BASE_URL", "http://localhost:3000")
	return base + "/resto/" + slug
}

// GetDashboard returns the landing numbers for the owner: today's orders and
// revenue, pending orders, menu size and the shareable public link.
func GetDashboard(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)

	var todayOrders int64
	var todayRevenue int64
	database.DB.Model(&model.Order{}).
		Where("restaurant_id = ? AND status <> ? AND created_at >= ?", restaurant.ID, constants.ORDER_STATUS_CANCELLED, startOfDay).
		Count(&todayOrders)
	database.DB.Model(&model.Order{}).
		Where("restaurant_id = ? AND status <> ? AND created_at >= ?", restaurant.ID, constants.ORDER_STATUS_CANCELLED, startOfDay).
		Select("COALESCE(SUM(total), 0)").
		Scan(&todayRevenue)

	var pendingOrders int64
	database.DB.Model(&model.Order{}).
		Where("restaurant_id = ? AND status IN ?", restaurant.ID, []string{constants.ORDER_STATUS_NEW, constants.ORDER_STATUS_PREPARING}).
		Count(&pendingOrders)

	var dishCount int64
	database.DB.Model(&model.Dish{}).
		Where("restaurant_id = ?", restaurant.ID).
		Count(&dishCount)

	var clientCount int64
	database.DB.Model(&model.Client{}).
		Where("restaurant_id = ?", restaurant.ID).
		Count(&clientCount)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"todayOrders":   todayOrders,
		"todayRevenue":  todayRevenue,
		"pendingOrders": pendingOrders,
		"dishCount":     dishCount,
		"clientCount":   clientCount,
		"menuUrl":       publicMenuURL(restaurant.Slug),
	})
}

// GetMenuQRCode renders the public menu link as a PNG, sized for print.
func GetMenuQRCode(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	size := c.QueryInt("size", 512)
	if size < 128 || size > 2048 {
		size = 512
	}

	png, err := utils.GenerateQRCode(publicMenuURL(restaurant.Slug), size)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
