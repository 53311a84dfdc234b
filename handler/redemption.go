package handler

import (
	"errors"
	"fmt"
	"log"
	"pizzeria_manager/config"
	"pizzeria_manager/constants"
	"pizzeria_manager/database"
	"pizzeria_manager/helper"
	"pizzeria_manager/model"
	"pizzeria_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Redemption requests move forward only; completion can skip the
// confirmation step when the operator fulfills on the spot.
var redemptionTransitions = map[string][]string{
	constants.REDEMPTION_PENDING:   {constants.REDEMPTION_CONFIRMED, constants.REDEMPTION_COMPLETED},
	constants.REDEMPTION_CONFIRMED: {constants.REDEMPTION_COMPLETED},
	constants.REDEMPTION_COMPLETED: {},
}

func canTransitionRedemption(from, to string) bool {
	for _, next := range redemptionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateRedemption claims an unlocked tier. The balance gate is the
// only ledger interaction: claiming does not consume points — tiers
// stay cumulative and the balance keeps growing with new orders.
func CreateRedemption(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateRedemptionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	tierInfo, ok := helper.TierInfoFor(input.Tier)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	db := database.DB

	var customer model.Customer
	if err := db.First(&customer, input.CustomerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	balance, err := helper.CustomerBalance(db, customer.ID, time.Now())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if balance < input.Tier {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TIER_LOCKED, helper.ErrTierLocked)
	}

	var redemption model.RiscattoECG
	if err := copier.Copy(&redemption, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	redemption.Code = helper.NewRedemptionCode()
	redemption.Discount = tierInfo.Discount
	redemption.Price = tierInfo.Price
	redemption.Status = constants.REDEMPTION_PENDING

	if err := db.Create(&redemption).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"codice": redemption.Code,
		"sconto": redemption.Discount,
		"prezzo": redemption.Price,
	})
}

// GetRedemptions is the operator work queue, oldest pending first.
func GetRedemptions(c *fiber.Ctx) error {
	status := c.Query("status")

	query := database.DB.Model(&model.RiscattoECG{}).Order("created_at asc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var redemptions []model.RiscattoECG
	if err := query.Find(&redemptions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, redemptions)
}

// UpdateRedemptionStatus advances a request; operator-only (enforced
// by the route middleware). Confirmation emails the applicant.
func UpdateRedemptionStatus(c *fiber.Ctx) error {
	code := c.Params("code")
	input, ok := c.Locals("input").(model.UpdateRedemptionStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var redemption model.RiscattoECG
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("code = ?", code).
			First(&redemption).Error; err != nil {
			return err
		}

		if !canTransitionRedemption(redemption.Status, input.NewStatus) {
			return helper.ErrInvalidTransition
		}

		return tx.Model(&redemption).Update("status", input.NewStatus).Error
	})
	if err != nil {
		if errors.Is(err, helper.ErrInvalidTransition) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_TRANSITION, err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if input.NewStatus == constants.REDEMPTION_CONFIRMED {
		go sendRedemptionConfirmedEmail(redemption)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"codice": redemption.Code,
		"status": input.NewStatus,
	})
}

func sendRedemptionConfirmedEmail(redemption model.RiscattoECG) {
	to := config.Config("ECG_NOTIFY_EMAIL")
	if to == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "PizzaPoints <noreply@pizzapoints.it>")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("ECG confermato - %s", redemption.Code))
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Prenotazione ECG confermata.</p><p>Cliente: %s<br>Indirizzo: %s<br>Data preferita: %s (%s)<br>Telefono: %s</p>",
		redemption.Name, redemption.Address, redemption.PreferredDate, redemption.TimeBand, redemption.Phone))

	d := gomail.NewDialer(config.Config("SMTP_HOST"), 587, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Errore invio email conferma ECG %s: %v", redemption.Code, err)
	}
}
