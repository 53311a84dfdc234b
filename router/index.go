package router

import (
	"pizzeria_manager/handler"
	"pizzeria_manager/middleware"
	"pizzeria_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", validate.OperatorLogin(), handler.Login)

	clienti := v1.Group("/clienti", logger.New())
	clienti.Post("/login", validate.CustomerLogin(), handler.CustomerLogin)
	clienti.Get("/me", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetCurrentCustomer)
	clienti.Get("/:customerId/ordini", validate.GetById("customerId"), handler.GetCustomerOrders)
	clienti.Get("/:customerId/fedelta", validate.GetById("customerId"), handler.GetLoyaltyStatus)

	pizzerie := v1.Group("/pizzerie", logger.New())
	pizzerie.Get("/", handler.GetPizzerias)
	pizzerie.Post("/", middleware.Protected(), middleware.OperatorOnly(), validate.CreatePizzeria(), handler.CreatePizzeria)
	pizzerie.Get("/:slug", handler.GetPizzeriaDetail)
	pizzerie.Patch("/:pizzeriaId/status", middleware.Protected(), middleware.OperatorOnly(), validate.GetById("pizzeriaId"), validate.UpdatePizzeriaStatus(), handler.UpdatePizzeriaStatus)

	slots := v1.Group("/slots", logger.New())
	slots.Get("/:pizzeriaId", validate.GetById("pizzeriaId"), handler.GetSlots)

	ordini := v1.Group("/ordini", logger.New())
	ordini.Get("/", middleware.Protected(), middleware.OperatorOnly(), handler.GetOrders)
	ordini.Post("/", validate.CreateOrder(), handler.CreateOrder)
	ordini.Get("/:code", handler.GetOrderDetail)
	ordini.Patch("/:code/status", middleware.Protected(), middleware.OperatorOnly(), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	ordini.Get("/:code/ws", websocket.New(handler.TrackingWebsocket))

	recensioni := v1.Group("/recensioni", logger.New())
	recensioni.Post("/", validate.CreateReview(), handler.CreateReview)

	riscatti := v1.Group("/riscatti-ecg", logger.New())
	riscatti.Post("/", validate.CreateRedemption(), handler.CreateRedemption)
	riscatti.Get("/", middleware.Protected(), middleware.OperatorOnly(), handler.GetRedemptions)
	riscatti.Patch("/:code/status", middleware.Protected(), middleware.OperatorOnly(), validate.UpdateRedemptionStatus(), handler.UpdateRedemptionStatus)

	trasferimenti := v1.Group("/trasferimenti", logger.New())
	trasferimenti.Post("/", validate.CreateTransfer(), handler.CreateTransfer)

	statistiche := v1.Group("/statistiche", logger.New())
	statistiche.Get("/", middleware.Protected(), middleware.OperatorOnly(), handler.GetAdminStats)
}
