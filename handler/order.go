package handler

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"pizzeria_manager/constants"
	"pizzeria_manager/database"
	"pizzeria_manager/helper"
	"pizzeria_manager/model"
	"pizzeria_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateOrder runs the checkout: validated cart in, order code out.
// The slot is reserved before the transaction and released again if
// anything later fails, so no capacity is ever orphaned.
func CreateOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	db := database.DB

	var pizzeria model.Pizzeria
	if err := db.First(&pizzeria, input.PizzeriaId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if pizzeria.Status != constants.PIZZERIA_ACTIVE {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Pizzeria non attiva", nil)
	}

	items, err := buildOrderItems(db, input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	total := helper.OrderTotal(items)

	ctx := context.Background()
	if err := helper.ReserveSlot(ctx, input.PizzeriaId, input.SlotDate, input.SlotTime); err != nil {
		if errors.Is(err, helper.ErrSlotUnavailable) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SLOT_UNAVAILABLE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order := model.Order{
		PublicCode:      helper.NewOrderCode(),
		PizzeriaId:      input.PizzeriaId,
		Total:           total,
		FulfillmentType: input.FulfillmentType,
		DeliveryAddress: input.DeliveryAddress,
		SlotDate:        input.SlotDate,
		SlotTime:        input.SlotTime,
		Note:            input.Note,
		Status:          constants.ORDER_RECEIVED,
		Items:           items,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		customer, err := helper.FindOrCreateCustomerByPhone(tx, input.CustomerPhone, input.CustomerName)
		if err != nil {
			return err
		}
		order.CustomerId = customer.ID

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		statusLog := model.OrderStatusLog{
			OrderId:  order.ID,
			ToStatus: constants.ORDER_RECEIVED,
		}
		return tx.Create(&statusLog).Error
	})
	if err != nil {
		// Compensate: give the reserved capacity back.
		if relErr := helper.ReleaseSlot(ctx, input.PizzeriaId, input.SlotDate, input.SlotTime); relErr != nil {
			log.Printf("Errore rilascio slot dopo checkout fallito (%s %s): %v", input.SlotDate, input.SlotTime, relErr)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"codice": order.PublicCode,
		"totale": order.Total,
	})
}

// buildOrderItems snapshots product and extra prices into order lines.
func buildOrderItems(db *gorm.DB, input model.CreateOrderInput) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		var product model.Product
		if err := db.Where("id = ? AND pizzeria_id = ? AND available = true", in.ProductId, input.PizzeriaId).
			First(&product).Error; err != nil {
			return nil, fmt.Errorf("prodotto %d non disponibile", in.ProductId)
		}

		var extras []model.OrderItemExtra
		if len(in.ExtraIds) > 0 {
			var rows []model.Extra
			if err := db.Where("id IN ? AND available = true", in.ExtraIds).Find(&rows).Error; err != nil {
				return nil, err
			}
			if len(rows) != len(in.ExtraIds) {
				return nil, errors.New("extra non disponibile")
			}
			for _, e := range rows {
				extras = append(extras, model.OrderItemExtra{Name: e.Name, Price: e.Price})
			}
		}

		items = append(items, model.OrderItem{
			ProductId: product.ID,
			Name:      product.Name,
			Quantity:  in.Quantity,
			UnitPrice: product.Price,
			Extras:    extras,
		})
	}
	return items, nil
}

// UpdateOrderStatus drives the lifecycle. The status write, its audit
// row and — on delivery — the loyalty accrual commit or fail together.
func UpdateOrderStatus(c *fiber.Ctx) error {
	orderCode := c.Params("code")
	input, ok := c.Locals("input").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var order model.Order
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("public_code = ?", orderCode).
			First(&order).Error; err != nil {
			return err
		}

		if !helper.CanTransition(order.Status, input.NewStatus) {
			return helper.ErrInvalidTransition
		}

		now := time.Now()
		updates := map[string]any{"status": input.NewStatus}
		switch input.NewStatus {
		case constants.ORDER_DELIVERED:
			updates["delivered_at"] = now
		case constants.ORDER_CANCELLED:
			updates["cancelled_at"] = now
		}

		statusLog := model.OrderStatusLog{
			OrderId:    order.ID,
			FromStatus: order.Status,
			ToStatus:   input.NewStatus,
		}
		if err := tx.Create(&statusLog).Error; err != nil {
			return err
		}

		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}

		if input.NewStatus == constants.ORDER_DELIVERED {
			// Accrual is part of the same unit: a failed accrual
			// rolls the whole transition back.
			accrual := helper.NewOrderAccrual(order.CustomerId, order.PublicCode, now)
			if err := helper.AppendEntry(tx, accrual); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, helper.ErrInvalidTransition) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_TRANSITION, err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	// A cancelled order hands its slot back right away; the release is
	// floored at zero so replays cannot open phantom capacity.
	if input.NewStatus == constants.ORDER_CANCELLED {
		if err := helper.ReleaseSlot(context.Background(), order.PizzeriaId, order.SlotDate, order.SlotTime); err != nil {
			log.Printf("Errore rilascio slot per ordine annullato %s: %v", order.PublicCode, err)
		}
	}

	PublishOrderStatus(order.PublicCode, input.NewStatus)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"codice": order.PublicCode,
		"status": input.NewStatus,
	})
}

// GetOrderDetail returns the tracking view: items, status timeline and
// a QR carrying the public code.
func GetOrderDetail(c *fiber.Ctx) error {
	orderCode := c.Params("code")

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Items.Extras").
		Preload("StatusLog", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Pizzeria").
		Where("public_code = ?", orderCode).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
	if err != nil {
		log.Printf("Errore generazione QR per ordine %s: %v", order.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	timeline := make([]fiber.Map, 0, len(order.StatusLog))
	for _, entry := range order.StatusLog {
		timeline = append(timeline, fiber.Map{
			"status": entry.ToStatus,
			"at":     entry.CreatedAt.Format("02/01/2006 15:04"),
		})
	}

	response := fiber.Map{
		"codice":             order.PublicCode,
		"pizzeria":           order.Pizzeria.Name,
		"status":             order.Status,
		"tipo_ordine":        order.FulfillmentType,
		"indirizzo_consegna": order.DeliveryAddress,
		"slot_data":          order.SlotDate,
		"slot_orario":        order.SlotTime,
		"totale":             order.Total,
		"articoli":           order.Items,
		"note":               order.Note,
		"cronologia":         timeline,
		"qrCode":             qrBase64,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetOrders lists orders for the kitchen dashboard, newest first.
func GetOrders(c *fiber.Ctx) error {
	var filter model.FilterOrder
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Order{}).Preload("Items").Order("created_at desc")
	if filter.PizzeriaId > 0 {
		query = query.Where("pizzeria_id = ?", filter.PizzeriaId)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var totalCount int64
	query.Count(&totalCount)
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}
