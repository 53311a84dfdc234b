package model

import "time"

type Customer struct {
	DTO
	Phone    string  `gorm:"uniqueIndex;not null" json:"telefono"`
	Name     string  `gorm:"not null" json:"nome"`
	City     *string `json:"citta"`
	Address  *string `json:"indirizzo_default"`
	IsActive bool    `gorm:"default:true" json:"isActive"`
}

// LoyaltyStatus is the derived view over the customer's ledger.
type LoyaltyStatus struct {
	Balance       int        `json:"punti_fedelta"`
	NextExpiry    *time.Time `json:"scadenza_punti"`
	UnlockedTiers []TierInfo `json:"livelli_sbloccati"`
}

type TierInfo struct {
	Tier     int     `json:"ordini"`
	Discount string  `json:"sconto"`
	Price    float64 `json:"prezzo"`
}

type CustomerLoginInput struct {
	Phone string `json:"telefono" validate:"required"`
	Name  string `json:"nome"`
}

// Operator account, seeded at startup.
type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
