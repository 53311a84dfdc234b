package handler

import (
	"pizzeria_manager/constants"
	"pizzeria_manager/helper"
	"pizzeria_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetSlots returns the day's availability for one pizzeria, ordered by
// time ascending. Defaults to today when ?data= is missing.
func GetSlots(c *fiber.Ctx) error {
	pizzeriaId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	date := c.Query("data")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	slots, err := helper.ListSlots(c.Context(), uint(pizzeriaId), date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, slots)
}
