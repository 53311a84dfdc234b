package helper

import (
	"fmt"
	"pizzeria_manager/constants"
	"pizzeria_manager/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func GenerateUniquePizzeriaSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Pizzeria{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

// PlanPrice is the monthly subscription fee for a plan.
func PlanPrice(plan string) float64 {
	switch plan {
	case constants.PLAN_EARLY_BIRD:
		return 49
	case constants.PLAN_PRO:
		return 69
	case constants.PLAN_PREMIUM:
		return 99
	default:
		return 39
	}
}
