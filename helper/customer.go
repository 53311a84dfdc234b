package helper

import (
	"pizzeria_manager/config"
	"pizzeria_manager/database"
	"pizzeria_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// GetInfoCustomerFromToken reads the parsed JWT stashed in Locals by
// the middleware and resolves the customer row when one exists.
func GetInfoCustomerFromToken(c *fiber.Ctx) (model.TokenClaim, model.Customer) {
	var claim model.TokenClaim
	var customer model.Customer

	raw := c.Locals("user")
	token, ok := raw.(*jwt.Token)
	if !ok || token == nil {
		return claim, customer
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return claim, customer
	}

	if v, ok := claims["customerId"].(float64); ok {
		claim.CustomerId = uint(v)
	}
	if v, ok := claims["accountId"].(float64); ok {
		claim.AccountId = uint(v)
	}
	if v, ok := claims["role"].(string); ok {
		claim.Role = v
	}
	if v, ok := claims["phone"].(string); ok {
		claim.Phone = v
	}

	if claim.CustomerId > 0 {
		database.DB.First(&customer, claim.CustomerId)
	}
	return claim, customer
}

// FindOrCreateCustomerByPhone resolves the customer keyed by phone,
// creating the row on first contact. Runs inside the caller's tx so a
// failed checkout does not leave a dangling customer.
func FindOrCreateCustomerByPhone(tx *gorm.DB, phone, name string) (model.Customer, error) {
	var customer model.Customer
	err := tx.Where("phone = ?", phone).First(&customer).Error
	if err == nil {
		return customer, nil
	}
	if err != gorm.ErrRecordNotFound {
		return customer, err
	}

	customer = model.Customer{Phone: phone, Name: name, IsActive: true}
	if err := tx.Create(&customer).Error; err != nil {
		return customer, err
	}
	return customer, nil
}

func JWTSecret() []byte {
	return []byte(config.ConfigOr("JWT_SECRET", "dev-secret"))
}
