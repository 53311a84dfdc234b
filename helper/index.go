package helper

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Public codes shown to customers: short, prefixed, uppercase.
func NewOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

func NewTransferCode() string {
	return "TRF-" + strings.ToUpper(uuid.New().String()[:8])
}

func NewRedemptionCode() string {
	return "ECG-" + strings.ToUpper(uuid.New().String()[:8])
}
