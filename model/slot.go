package model

// SlotConfig is the per-pizzeria capacity configuration for a pickup/
// delivery time slot. Booked counts are not persisted here: they live
// in Redis, keyed per (pizzeria, date, time), and slots for a given
// day are recomputed from this configuration plus the live counters.
type SlotConfig struct {
	DTO
	PizzeriaId uint   `gorm:"index:idx_slot_pizzeria_time,unique" json:"pizzeriaId"`
	Time       string `gorm:"size:5;index:idx_slot_pizzeria_time,unique" json:"orario"` // "19:30"
	Capacity   int    `gorm:"not null" json:"capacita"`
}

// SlotAvailability is the computed per-day view of one slot.
type SlotAvailability struct {
	Time         string `json:"orario"`
	Capacity     int    `json:"capacita"`
	Booked       int    `json:"prenotati"`
	OccupancyPct int    `json:"occupazione"`
	Available    bool   `json:"disponibile"`
}
