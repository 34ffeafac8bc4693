package handler

import (
	"errors"
	"time"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func setSessionCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})
}

// Register creates the owner account and its restaurant in one transaction.
// The slug comes from the restaurant name, with the single disambiguation
// retry on collision.
func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	var existing model.Account
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Cet email est déjà utilisé", nil, "email")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var account model.Account
	var restaurant model.Restaurant

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		account = model.Account{Email: input.Email, Password: hash, Active: true}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		slug, err := helper.GenerateUniqueRestaurantSlug(tx, input.RestaurantName, 0)
		if err != nil {
			return err
		}

		active := true
		city := input.City
		if city == "" {
			city = "Cotonou"
		}
		restaurant = model.Restaurant{
			AccountId: account.ID,
			Name:      input.RestaurantName,
			Slug:      slug,
			City:      city,
			Whatsapp:  input.Whatsapp,
			Active:    &active,
		}
		return tx.Create(&restaurant).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Impossible de créer le compte", err)
	}

	claim := model.TokenClaim{AccountId: account.ID, Email: account.Email, RestaurantId: restaurant.ID}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setSessionCookies(c, accessToken, refreshToken)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "register success",
		"account":    fiber.Map{"id": account.ID, "email": account.Email},
		"restaurant": restaurant,
	})
}

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("missing validated input"))
	}

	account, err := helper.GetAccountByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_EMAIL, errors.New("email not exists"))
	}

	if !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match email"))
	}

	if !account.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	var restaurant model.Restaurant
	if err := database.DB.Where("account_id = ?", account.ID).First(&restaurant).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	claim := model.TokenClaim{AccountId: account.ID, Email: account.Email, RestaurantId: restaurant.ID}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setSessionCookies(c, accessToken, refreshToken)

	return c.JSON(fiber.Map{
		"message": "login success",
		"account": fiber.Map{
			"id":    account.ID,
			"email": account.Email,
		},
		"restaurant": restaurant,
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "refresh token not found"})
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	accountIdFloat, ok := claims["accountId"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid accountId in payload"})
	}
	email, ok := claims["email"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email in payload"})
	}

	var restaurant model.Restaurant
	if err := database.DB.Where("account_id = ?", uint(accountIdFloat)).First(&restaurant).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unknown account"})
	}

	claim := model.TokenClaim{AccountId: uint(accountIdFloat), Email: email, RestaurantId: restaurant.ID}

	newAccessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate access token"})
	}
	newRefreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate refresh token"})
	}

	setSessionCookies(c, newAccessToken, newRefreshToken)

	return c.JSON(fiber.Map{"message": "refresh success"})
}

func Me(c *fiber.Ctx) error {
	claim, restaurant, err := helper.GetInfoAccountFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalide", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"account":    fiber.Map{"id": claim.AccountId, "email": claim.Email},
		"restaurant": restaurant,
	})
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true, Path: "/"})
	return c.JSON(fiber.Map{"message": "logout success"})
}
