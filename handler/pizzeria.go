package handler

import (
	"pizzeria_manager/constants"
	"pizzeria_manager/database"
	"pizzeria_manager/helper"
	"pizzeria_manager/model"
	"pizzeria_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetPizzerias(c *fiber.Ctx) error {
	var filter model.FilterPizzeria
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Pizzeria{}).Order("overall desc")
	if filter.City != "" && filter.City != "Tutte" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	} else {
		query = query.Where("status = ?", constants.PIZZERIA_ACTIVE)
	}

	var totalCount int64
	query.Count(&totalCount)
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var pizzerias model.Pizzerias
	if err := query.Find(&pizzerias).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       pizzerias,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetPizzeriaDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var pizzeria model.Pizzeria
	if err := database.DB.
		Preload("Products", "available = true").
		Where("slug = ?", slug).
		First(&pizzeria).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	var extras []model.Extra
	if err := database.DB.Where("available = true").Find(&extras).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"pizzeria": pizzeria,
		"extra":    extras,
	})
}

// CreatePizzeria registers a new storefront, admin only. The slug is
// derived from the name and made unique inside the same transaction.
func CreatePizzeria(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreatePizzeriaInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var pizzeria model.Pizzeria
	if err := copier.Copy(&pizzeria, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	pizzeria.Status = constants.PIZZERIA_ACTIVE

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		pizzeria.Slug = helper.GenerateUniquePizzeriaSlug(tx, input.Name)
		return tx.Create(&pizzeria).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":   pizzeria.ID,
		"slug": pizzeria.Slug,
	})
}

// UpdatePizzeriaStatus toggles attivo/disattivo, operator only.
func UpdatePizzeriaStatus(c *fiber.Ctx) error {
	pizzeriaId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("input").(model.UpdatePizzeriaStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var pizzeria model.Pizzeria
	if err := database.DB.First(&pizzeria, pizzeriaId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if err := database.DB.Model(&pizzeria).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":     pizzeria.ID,
		"status": input.Status,
	})
}

// GetAdminStats rolls up the platform view: pizzerie per plan and the
// monthly subscription revenue they represent.
func GetAdminStats(c *fiber.Ctx) error {
	var pizzerias model.Pizzerias
	if err := database.DB.Find(&pizzerias).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var monthlyRevenue float64
	planCounts := map[string]int{}
	for _, p := range pizzerias {
		planCounts[p.Plan]++
		if p.Status == constants.PIZZERIA_ACTIVE {
			monthlyRevenue += helper.PlanPrice(p.Plan)
		}
	}

	var orderCount int64
	database.DB.Model(&model.Order{}).Count(&orderCount)

	var redemptionCount int64
	database.DB.Model(&model.RiscattoECG{}).Count(&redemptionCount)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"pizzerie":        len(pizzerias),
		"per_piano":       planCounts,
		"ricavo_mensile":  monthlyRevenue,
		"ordini_totali":   orderCount,
		"riscatti_totali": redemptionCount,
	})
}
