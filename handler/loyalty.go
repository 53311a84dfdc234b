package handler

import (
	"pizzeria_manager/constants"
	"pizzeria_manager/database"
	"pizzeria_manager/helper"
	"pizzeria_manager/model"
	"pizzeria_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetLoyaltyStatus derives balance, next expiry and unlocked tiers
// from the ledger. Nothing here is stored: the entries are the truth.
func GetLoyaltyStatus(c *fiber.Ctx) error {
	customerId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	var entries []model.LedgerEntry
	if err := database.DB.
		Where("customer_id = ?", customer.ID).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now()
	balance := helper.FoldBalance(entries, now)

	status := model.LoyaltyStatus{
		Balance:       balance,
		NextExpiry:    helper.NextExpiry(entries, now),
		UnlockedTiers: helper.UnlockedTiers(balance),
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"cliente":   customer,
		"fedelta":   status,
		"movimenti": entries,
	})
}
