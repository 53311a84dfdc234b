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

// CustomerLogin signs a token for the phone number, registering the
// customer on first contact. The storefront has no passwords for
// customers: the phone is the login key.
func CustomerLogin(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CustomerLoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	customer, err := helper.FindOrCreateCustomerByPhone(database.DB, input.Phone, input.Name)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !customer.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, nil)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"customerId": customer.ID,
		"phone":      customer.Phone,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(helper.JWTSecret())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken": signed,
		"cliente":     customer,
	})
}

func GetCurrentCustomer(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Effettua l'accesso", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

// GetCustomerOrders lists a customer's orders, newest first.
func GetCustomerOrders(c *fiber.Ctx) error {
	customerId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var orders []model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Items.Extras").
		Preload("Pizzeria").
		Where("customer_id = ?", customerId).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := []fiber.Map{}
	for _, order := range orders {
		response = append(response, fiber.Map{
			"codice":      order.PublicCode,
			"pizzeria":    order.Pizzeria.Name,
			"status":      order.Status,
			"totale":      order.Total,
			"slot_orario": order.SlotTime,
			"creato_il":   order.CreatedAt.Format("02/01/2006 15:04"),
			"articoli":    order.Items,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}
