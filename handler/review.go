package handler

import (
	"errors"
	"pizzeria_manager/constants"
	"pizzeria_manager/database"
	"pizzeria_manager/helper"
	"pizzeria_manager/model"
	"pizzeria_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateReview records the one rating a delivered order gets and folds
// it into the pizzeria's running aggregates within the same
// transaction, under the pizzeria row lock.
func CreateReview(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var review model.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var order model.Order
		if err := tx.Where("public_code = ?", input.OrderCode).First(&order).Error; err != nil {
			return err
		}
		if order.Status != constants.ORDER_DELIVERED {
			return helper.ErrOrderNotDelivered
		}

		var existing int64
		if err := tx.Model(&model.Review{}).Where("order_id = ?", order.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return helper.ErrAlreadyReviewed
		}

		var pizzeria model.Pizzeria
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&pizzeria, order.PizzeriaId).Error; err != nil {
			return err
		}

		review = model.Review{
			OrderId:      order.ID,
			PizzeriaId:   order.PizzeriaId,
			FoodScore:    input.FoodScore,
			ServiceScore: input.ServiceScore,
			Comment:      input.Comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		helper.ApplyReview(&pizzeria, input.FoodScore, input.ServiceScore)
		return tx.Model(&pizzeria).Updates(map[string]any{
			"food_avg":     pizzeria.FoodAvg,
			"service_avg":  pizzeria.ServiceAvg,
			"overall":      pizzeria.Overall,
			"review_count": pizzeria.ReviewCount,
		}).Error
	})
	if err != nil {
		if errors.Is(err, helper.ErrOrderNotDelivered) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_NOT_DELIVERED, err)
		}
		if errors.Is(err, helper.ErrAlreadyReviewed) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ALREADY_REVIEWED, err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"reviewId": review.ID,
		"voto":     helper.ReviewScore(input.FoodScore, input.ServiceScore),
	})
}
