package handler

import (
	"errors"
	"pizzeria_manager/constants"
	"pizzeria_manager/database"
	"pizzeria_manager/helper"
	"pizzeria_manager/model"
	"pizzeria_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateTransfer gifts points from one customer to another. Both
// ledger entries and the transfer row land in one transaction; the
// sender row lock keeps two concurrent gifts from reading the same
// stale balance.
func CreateTransfer(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateTransferInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := helper.ValidateTransferAmount(input.Amount); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_AMOUNT, err)
	}
	if err := helper.ValidateTransferParties(input.SenderPhone, input.RecipientPhone); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SELF_TRANSFER, err)
	}

	db := database.DB

	var sender model.Customer
	if err := db.Where("phone = ?", input.SenderPhone).First(&sender).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	var recipient model.Customer
	if err := db.Where("phone = ?", input.RecipientPhone).First(&recipient).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.RECIPIENT_NOT_ELIGIBLE, err)
	}

	// The recipient must already be a customer with history, never one
	// conjured up by the gift itself.
	var orderCount int64
	if err := db.Model(&model.Order{}).Where("customer_id = ?", recipient.ID).Count(&orderCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if orderCount == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.RECIPIENT_NOT_ELIGIBLE, nil)
	}

	code := helper.NewTransferCode()
	err := db.Transaction(func(tx *gorm.DB) error {
		return helper.ExecuteTransfer(tx, sender, recipient, input.Amount, code, input.Message)
	})
	if err != nil {
		if errors.Is(err, helper.ErrInsufficientBalance) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INSUFFICIENT_BALANCE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"codice": code,
		"punti":  input.Amount,
	})
}
