package database

import (
	"log"
	"pizzeria_manager/constants"
	"pizzeria_manager/model"
	"pizzeria_manager/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("operatore123"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "operatore123"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: HashPassword, Active: true, Role: constants.ROLE_ADMIN},
		{Username: "Operatore", Password: HashPassword, Active: true, Role: constants.ROLE_OPERATOR},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	extras := []model.Extra{
		{Name: "Prosciutto", Price: 1.5},
		{Name: "Funghi", Price: 1.0},
		{Name: "Olive", Price: 0.8},
		{Name: "Salame piccante", Price: 1.2},
		{Name: "Mozzarella extra", Price: 1.5},
		{Name: "Rucola", Price: 0.5},
	}
	for _, extra := range extras {
		if err := db.Where(model.Extra{Name: extra.Name}).FirstOrCreate(&extra).Error; err != nil {
			log.Println("failed to seed data for extra:", extra.Name, "error:", err)
		}
	}

	pizzerias := []model.Pizzeria{
		{Name: "Da Gigi", Slug: "da-gigi", City: "Catania", Address: "Via Etnea 12", Phone: utils.Ptr("095 7151234"), Plan: constants.PLAN_EARLY_BIRD, Status: constants.PIZZERIA_ACTIVE},
		{Name: "La Brace", Slug: "la-brace", City: "Catania", Address: "Corso Italia 48", Phone: utils.Ptr("095 5376688"), Plan: constants.PLAN_PRO, Status: constants.PIZZERIA_ACTIVE},
		{Name: "Bella Napoli", Slug: "bella-napoli", City: "Siracusa", Address: "Via Roma 3", Phone: utils.Ptr("0931 412099"), Plan: constants.PLAN_BASE, Status: constants.PIZZERIA_ACTIVE},
	}
	for i := range pizzerias {
		if err := db.Where(model.Pizzeria{Slug: pizzerias[i].Slug}).FirstOrCreate(&pizzerias[i]).Error; err != nil {
			log.Println("failed to seed data for pizzeria:", pizzerias[i].Name, "error:", err)
		}
	}

	products := []model.Product{
		{PizzeriaId: pizzerias[0].ID, Name: "Margherita", Price: 6.5, Description: utils.StringPtr("Pomodoro, mozzarella, basilico")},
		{PizzeriaId: pizzerias[0].ID, Name: "Diavola", Price: 8.0, Description: utils.StringPtr("Pomodoro, mozzarella, salame piccante")},
		{PizzeriaId: pizzerias[0].ID, Name: "Quattro Formaggi", Price: 9.0, Description: utils.StringPtr("Mozzarella, gorgonzola, fontina, grana")},
		{PizzeriaId: pizzerias[1].ID, Name: "Margherita", Price: 7.0, Description: utils.StringPtr("Pomodoro, fior di latte, basilico")},
		{PizzeriaId: pizzerias[1].ID, Name: "Norma", Price: 8.5, Description: utils.StringPtr("Pomodoro, melanzane, ricotta salata")},
		{PizzeriaId: pizzerias[2].ID, Name: "Margherita", Price: 6.0, Description: utils.StringPtr("Pomodoro, mozzarella, basilico")},
	}
	for _, product := range products {
		if err := db.Where(model.Product{PizzeriaId: product.PizzeriaId, Name: product.Name}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed data for product:", product.Name, "error:", err)
		}
	}

	// Evening service, half-hour slots. Capacity is the number of
	// orders the kitchen takes per slot.
	slotTimes := []string{"18:30", "19:00", "19:30", "20:00", "20:30", "21:00", "21:30"}
	for _, pizzeria := range pizzerias {
		for _, t := range slotTimes {
			slot := model.SlotConfig{PizzeriaId: pizzeria.ID, Time: t, Capacity: 8}
			if err := db.Where(model.SlotConfig{PizzeriaId: pizzeria.ID, Time: t}).FirstOrCreate(&slot).Error; err != nil {
				log.Println("failed to seed data for slot:", pizzeria.Name, t, "error:", err)
			}
		}
	}
}
