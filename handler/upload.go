package handler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const maxImageSize = 5 * 1024 * 1024

func validImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

// UploadDishImage replaces a dish photo: new asset up first, DB updated, old
// asset destroyed last so a failed upload never loses the current image.
func UploadDishImage(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	dishId := c.Locals("inputId").(int)

	var dish model.Dish
	if err := database.DB.
		Where("id = ? AND restaurant_id = ?", dishId, restaurant.ID).
		First(&dish).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Plat introuvable", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Image manquante", err, "image")
	}
	if !validImageExt(file.Filename) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Formats acceptés : JPG, PNG, WEBP", errors.New("unsupported extension"), "image")
	}
	if file.Size > maxImageSize {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "L'image dépasse 5 Mo", errors.New("file too large"), "image")
	}

	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer reader.Close()

	cld, err := helper.InitCloudinary()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	result, err := cld.Upload.Upload(c.Context(), reader, uploader.UploadParams{
		Folder:       "dishes",
		PublicID:     fmt.Sprintf("dish_%d_%d", dish.ID, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Échec de l'envoi de l'image", err)
	}

	oldUrl := dish.ImageUrl
	dish.ImageUrl = utils.StringPtr(result.SecureURL)
	if err := database.DB.Save(&dish).Error; err != nil {
		cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: result.PublicID})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if oldUrl != nil {
		if publicID := helper.ExtractPublicID(*oldUrl); publicID != "" {
			cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicID})
		}
	}

	helper.InvalidateMenuCache(c.Context(), restaurant.Slug)

	return utils.SuccessResponse(c, fiber.StatusOK, dish)
}

// UploadRestaurantLogo works like the dish image upload, for the storefront
// header.
func UploadRestaurantLogo(c *fiber.Ctx) error {
	_, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	file, err := c.FormFile("logo")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Image manquante", err, "logo")
	}
	if !validImageExt(file.Filename) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Formats acceptés : JPG, PNG, WEBP", errors.New("unsupported extension"), "logo")
	}
	if file.Size > maxImageSize {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "L'image dépasse 5 Mo", errors.New("file too large"), "logo")
	}

	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer reader.Close()

	cld, err := helper.InitCloudinary()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	result, err := cld.Upload.Upload(c.Context(), reader, uploader.UploadParams{
		Folder:       "logos",
		PublicID:     fmt.Sprintf("resto_%d_%d", restaurant.ID, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Échec de l'envoi de l'image", err)
	}

	oldUrl := restaurant.LogoUrl
	restaurant.LogoUrl = utils.StringPtr(result.SecureURL)
	if err := database.DB.Save(restaurant).Error; err != nil {
		cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: result.PublicID})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if oldUrl != nil {
		if publicID := helper.ExtractPublicID(*oldUrl); publicID != "" {
			cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicID})
		}
	}

	helper.InvalidateMenuCache(c.Context(), restaurant.Slug)

	return utils.SuccessResponse(c, fiber.StatusOK, restaurant)
}
