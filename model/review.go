package model

// Review is the one-to-one rating of a delivered order, two axes.
type Review struct {
	DTO
	OrderId      uint    `gorm:"uniqueIndex" json:"orderId"`
	PizzeriaId   uint    `gorm:"index" json:"pizzeriaId"`
	FoodScore    int     `gorm:"not null" json:"voto_cibo"`
	ServiceScore int     `gorm:"not null" json:"voto_servizio"`
	Comment      *string `gorm:"size:300" json:"commento"`

	Order Order `gorm:"foreignKey:OrderId" json:"-"`
}

type CreateReviewInput struct {
	OrderCode    string  `json:"codice_ordine" validate:"required"`
	FoodScore    int     `json:"voto_cibo" validate:"required,min=1,max=5"`
	ServiceScore int     `json:"voto_servizio" validate:"required,min=1,max=5"`
	Comment      *string `json:"commento" validate:"omitempty,max=300"`
}
