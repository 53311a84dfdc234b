package validate

import (
	"fmt"
	"pizzeria_manager/model"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,13}$`)

func isValidPhone(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return phoneRegex.MatchString(phone)
}

func CustomerLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CustomerLoginInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Phone == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Il numero di telefono non può essere vuoto",
				"field": "telefono",
			})
		}
		if !isValidPhone(input.Phone) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Numero di telefono non valido",
				"field": "telefono",
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func OperatorLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}
