package handler

import (
	"pizzeria_manager/constants"
	"pizzeria_manager/database"
	"pizzeria_manager/helper"
	"pizzeria_manager/model"
	"pizzeria_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Login authenticates an operator account.
func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var account model.Account
	if err := database.DB.Where("username = ?", input.Username).First(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_LOGIN_INPUT, err)
	}
	if !account.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, nil)
	}
	if !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, nil)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"accountId": account.ID,
		"role":      account.Role,
		"exp":       time.Now().Add(12 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(helper.JWTSecret())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken: signed,
	})
}
