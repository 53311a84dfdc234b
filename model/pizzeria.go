package model

type Pizzeria struct {
	DTO
	Name    string  `gorm:"not null" json:"nome"`
	Slug    string  `gorm:"uniqueIndex;size:80" json:"slug"`
	City    string  `gorm:"not null;index" json:"citta"`
	Address string  `json:"indirizzo"`
	Plan    string  `gorm:"size:20;default:'BASE'" json:"piano"`
	Status  string  `gorm:"size:20;default:'attivo'" json:"status"`
	Phone   *string `json:"telefono"`

	// Running rating aggregates, updated incrementally by the review
	// handler inside the same transaction as the review insert.
	FoodAvg     float64 `gorm:"default:0" json:"food_avg"`
	ServiceAvg  float64 `gorm:"default:0" json:"service_avg"`
	Overall     float64 `gorm:"default:0" json:"overall"`
	ReviewCount int64   `gorm:"default:0" json:"review_count"`

	Products []Product    `gorm:"foreignKey:PizzeriaId" json:"prodotti,omitempty"`
	Slots    []SlotConfig `gorm:"foreignKey:PizzeriaId" json:"-"`
}

type Pizzerias []Pizzeria

type Product struct {
	DTO
	PizzeriaId  uint    `gorm:"index" json:"pizzeriaId"`
	Name        string  `gorm:"not null" json:"nome"`
	Description *string `json:"descrizione"`
	Price       float64 `gorm:"not null" json:"prezzo"`
	Available   bool    `gorm:"default:true" json:"disponibile"`
}

// Extra is a priced add-on a customer can stack on a product.
type Extra struct {
	DTO
	Name      string  `gorm:"uniqueIndex;not null" json:"nome"`
	Price     float64 `gorm:"not null" json:"prezzo"`
	Available bool    `gorm:"default:true" json:"disponibile"`
}

type FilterPizzeria struct {
	Pagination
	City   string `query:"citta"`
	Status string `query:"status"`
}

type UpdatePizzeriaStatusInput struct {
	Status string `json:"status" validate:"required,oneof=attivo disattivo"`
}

type CreatePizzeriaInput struct {
	Name    string  `json:"nome" validate:"required"`
	City    string  `json:"citta" validate:"required"`
	Address string  `json:"indirizzo" validate:"required"`
	Plan    string  `json:"piano" validate:"required,oneof=BASE EARLY_BIRD PRO PREMIUM"`
	Phone   *string `json:"telefono"`
}
