package model

import "time"

// LedgerEntry is an immutable signed point movement. The customer's
// balance is never stored: it is always the sum of these rows, so the
// ledger stays auditable and cannot drift from its entries.
type LedgerEntry struct {
	DTO
	CustomerId uint       `gorm:"index:idx_ledger_customer" json:"customerId"`
	Delta      int        `gorm:"not null" json:"delta"`
	Reason     string     `gorm:"size:20;not null" json:"causale"` // ordine, regalo_inviato, regalo_ricevuto, riscatto
	RefCode    string     `gorm:"size:40;index" json:"riferimento"`
	Expiry     *time.Time `json:"scadenza"` // only positive accruals carry one
}

// Trasferimento records a point gift between two customers. The two
// paired ledger entries reference its code; their deltas sum to zero.
type Trasferimento struct {
	DTO
	Code        string  `gorm:"uniqueIndex;size:40" json:"codice"`
	SenderId    uint    `gorm:"index" json:"mittenteId"`
	RecipientId uint    `gorm:"index" json:"destinatarioId"`
	Amount      int     `gorm:"not null" json:"punti"`
	Message     *string `json:"messaggio"`
}

type CreateTransferInput struct {
	SenderPhone    string  `json:"mittente_telefono" validate:"required"`
	RecipientPhone string  `json:"destinatario_telefono" validate:"required"`
	Amount         int     `json:"punti" validate:"required"`
	Message        *string `json:"messaggio"`
}
