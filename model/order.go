package model

import "time"

type Order struct {
	DTO
	PublicCode      string     `gorm:"uniqueIndex;size:20" json:"codice"`
	CustomerId      uint       `gorm:"index" json:"customerId"`
	PizzeriaId      uint       `gorm:"index" json:"pizzeriaId"`
	Total           float64    `json:"totale"`
	FulfillmentType string     `gorm:"size:10" json:"tipo_ordine"` // asporto, consegna
	DeliveryAddress *string    `json:"indirizzo_consegna"`
	SlotDate        string     `gorm:"size:10" json:"slot_data"` // YYYY-MM-DD
	SlotTime        string     `gorm:"size:5" json:"slot_orario"`
	Note            *string    `json:"note"`
	Status          string     `gorm:"size:20;default:'ricevuto'" json:"status"`
	DeliveredAt     *time.Time `json:"consegnato_il"`
	CancelledAt     *time.Time `json:"annullato_il"`

	Items     []OrderItem      `gorm:"foreignKey:OrderId" json:"articoli"`
	StatusLog []OrderStatusLog `gorm:"foreignKey:OrderId" json:"-"`
	Customer  Customer         `gorm:"foreignKey:CustomerId" json:"-"`
	Pizzeria  Pizzeria         `gorm:"foreignKey:PizzeriaId" json:"-"`
}

type OrderItem struct {
	DTO
	OrderId   uint    `gorm:"index" json:"orderId"`
	ProductId uint    `json:"productId"`
	Name      string  `json:"nome"`
	Quantity  int     `gorm:"not null" json:"quantita"`
	UnitPrice float64 `gorm:"not null" json:"prezzo"`
	// Extras are snapshotted name+price so later menu edits cannot
	// change what an old order cost.
	Extras []OrderItemExtra `gorm:"foreignKey:OrderItemId" json:"extra"`
}

type OrderItemExtra struct {
	DTO
	OrderItemId uint    `gorm:"index" json:"-"`
	Name        string  `json:"nome"`
	Price       float64 `json:"prezzo"`
}

// OrderStatusLog is the append-only audit trail of lifecycle moves.
type OrderStatusLog struct {
	DTO
	OrderId    uint   `gorm:"index" json:"orderId"`
	FromStatus string `gorm:"size:20" json:"da"`
	ToStatus   string `gorm:"size:20" json:"a"`
}

type OrderItemInput struct {
	ProductId uint   `json:"productId" validate:"required,gt=0"`
	Quantity  int    `json:"quantita" validate:"required,gt=0"`
	ExtraIds  []uint `json:"extraIds" validate:"omitempty,dive,gt=0"`
}

type CreateOrderInput struct {
	CustomerPhone   string           `json:"telefono" validate:"required"`
	CustomerName    string           `json:"nome" validate:"required"`
	PizzeriaId      uint             `json:"pizzeriaId" validate:"required,gt=0"`
	Items           []OrderItemInput `json:"articoli" validate:"required,min=1,dive"`
	FulfillmentType string           `json:"tipo_ordine" validate:"required,oneof=asporto consegna"`
	DeliveryAddress *string          `json:"indirizzo_consegna"`
	SlotDate        string           `json:"slot_data" validate:"required"`
	SlotTime        string           `json:"slot_orario" validate:"required"`
	Note            *string          `json:"note"`
}

type UpdateOrderStatusInput struct {
	NewStatus string `json:"status" validate:"required,oneof=ricevuto in_preparazione pronto consegnato annullato"`
}

type FilterOrder struct {
	Pagination
	PizzeriaId uint   `query:"pizzeriaId"`
	Status     string `query:"status"`
}
