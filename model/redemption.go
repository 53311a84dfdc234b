package model

import "pizzeria_manager/utils"

// RiscattoECG tracks a claimed loyalty tier through the operator-driven
// home-screening fulfillment workflow.
type RiscattoECG struct {
	DTO
	Code          string           `gorm:"uniqueIndex;size:40" json:"codice"`
	CustomerId    uint             `gorm:"index" json:"cliente_id"`
	Tier          int              `gorm:"not null" json:"ordini_usati"` // 5, 10, 20
	Discount      string           `gorm:"size:5" json:"sconto"`
	Price         float64          `json:"prezzo"`
	Name          string           `gorm:"not null" json:"nome"`
	Address       string           `gorm:"not null" json:"indirizzo"`
	Phone         string           `gorm:"not null" json:"telefono"`
	PreferredDate utils.CustomDate `gorm:"type:date" json:"data_preferita"`
	TimeBand      string           `gorm:"size:12" json:"fascia_oraria"` // mattina, pomeriggio, sera
	Note          *string          `json:"note"`
	Status        string           `gorm:"size:12;default:'in_attesa'" json:"status"`

	Customer Customer `gorm:"foreignKey:CustomerId" json:"-"`
}

type CreateRedemptionInput struct {
	CustomerId    uint             `json:"cliente_id" validate:"required,gt=0"`
	Tier          int              `json:"ordini_usati" validate:"required,oneof=5 10 20"`
	Name          string           `json:"nome" validate:"required"`
	Address       string           `json:"indirizzo" validate:"required"`
	Phone         string           `json:"telefono" validate:"required"`
	PreferredDate utils.CustomDate `json:"data_preferita" validate:"required"`
	TimeBand      string           `json:"fascia_oraria" validate:"required,oneof=mattina pomeriggio sera"`
	Note          *string          `json:"note"`
}

type UpdateRedemptionStatusInput struct {
	NewStatus string `json:"status" validate:"required,oneof=confermato completato"`
}
