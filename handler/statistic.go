package handler

import (
	"time"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
)

const topDishLimit = 6

// GetStatistics powers the dashboard charts for one period (7j, 30j, 12m).
// Cancelled orders never count.
func GetStatistics(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	period := c.Query("period", constants.STATS_PERIOD_30D)
	validPeriods := []string{constants.STATS_PERIOD_7D, constants.STATS_PERIOD_30D, constants.STATS_PERIOD_12M}
	if !utils.IsValidValueOfConstant(period, validPeriods) {
		period = constants.STATS_PERIOD_30D
	}

	// One fetch covers both the current and the comparison window; the
	// helpers slice it by date in memory.
	var orders []model.Order
	if err := database.DB.
		Where("restaurant_id = ? AND status <> ?", restaurant.ID, constants.ORDER_STATUS_CANCELLED).
		Preload("Items").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now()
	filtered := helper.FilterOrdersByPeriod(orders, period, now)
	previous := helper.PreviousPeriodOrders(orders, period, now)

	revenue := helper.RevenueTotal(filtered)
	orderCount := len(filtered)

	var averageBasket int64
	if orderCount > 0 {
		averageBasket = revenue / int64(orderCount)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"period":        period,
		"revenue":       revenue,
		"orderCount":    orderCount,
		"averageBasket": averageBasket,
		"revenueChange": helper.RevenueChangePercent(revenue, helper.RevenueTotal(previous)),
		"salesSeries":   helper.BuildSalesSeries(filtered, period, now),
		"topDishes":     helper.TopDishes(filtered, topDishLimit),
		"typeBreakdown": helper.TypeBreakdown(filtered),
	})
}
