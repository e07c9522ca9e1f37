package route

import (
	"moving-service/src/internal/delivery/http"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App               *fiber.App
	BookingController *http.BookingController
	OrderController   *http.OrderController
	AuthMiddleware    fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	booking := c.App.Group("/bookings/v1")
	booking.Post("/session", c.BookingController.StartSession)
	booking.Get("/session", c.BookingController.GetSession)
	booking.Delete("/session", c.BookingController.AbandonSession)
	booking.Put("/session/vehicle", c.BookingController.SelectVehicle)
	booking.Put("/session/schedule", c.BookingController.SetSchedule)
	booking.Post("/session/checklist", c.BookingController.AddChecklistItem)
	booking.Put("/session/checklist/:id", c.BookingController.ToggleChecklistItem)
	booking.Delete("/session/checklist/:id", c.BookingController.RemoveChecklistItem)
	booking.Post("/session/payment", c.BookingController.ProceedToPayment)
	booking.Post("/session/finalize", c.BookingController.Finalize)

	orders := c.App.Group("/orders/v1")
	orders.Get("/", c.OrderController.ListOrders)
	orders.Get("/:id", c.OrderController.GetOrder)
}
