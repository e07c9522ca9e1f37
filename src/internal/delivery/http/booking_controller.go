package http

import (
	"moving-service/src/internal/delivery/http/middleware"
	"moving-service/src/internal/model"
	"moving-service/src/internal/usecase"
	"moving-service/src/pkg/log"
	"moving-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type BookingController struct {
	Log     log.Log
	UseCase *usecase.BookingUseCase
}

func NewBookingController(useCase *usecase.BookingUseCase, logger log.Log) *BookingController {
	return &BookingController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *BookingController) StartSession(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.StartSession(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Booking Session Started", fiber.StatusCreated, ctx)
}

func (c *BookingController) GetSession(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.GetSession(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Booking Session", fiber.StatusOK, ctx)
}

func (c *BookingController) SelectVehicle(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.SelectVehicleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("BookingController.SelectVehicle", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.SelectVehicle(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Vehicle Selected", fiber.StatusOK, ctx)
}

func (c *BookingController) SetSchedule(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.ScheduleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("BookingController.SetSchedule", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.SetSchedule(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Schedule Saved", fiber.StatusOK, ctx)
}

func (c *BookingController) AddChecklistItem(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.ChecklistAddRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("BookingController.AddChecklistItem", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.AddChecklistItem(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Checklist Item Added", fiber.StatusOK, ctx)
}

func (c *BookingController) ToggleChecklistItem(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ChecklistItemRequest{
		UserID: auth.UserID,
		ItemID: ctx.Params("id"),
	}

	result := c.UseCase.ToggleChecklistItem(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Checklist Item Toggled", fiber.StatusOK, ctx)
}

func (c *BookingController) RemoveChecklistItem(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ChecklistItemRequest{
		UserID: auth.UserID,
		ItemID: ctx.Params("id"),
	}

	result := c.UseCase.RemoveChecklistItem(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Checklist Item Removed", fiber.StatusOK, ctx)
}

func (c *BookingController) ProceedToPayment(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.ProceedToPayment(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Awaiting Payment", fiber.StatusOK, ctx)
}

func (c *BookingController) Finalize(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.FinalizeRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("BookingController.Finalize", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.Finalize(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Created", fiber.StatusCreated, ctx)
}

func (c *BookingController) AbandonSession(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.AbandonSession(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Booking Session Abandoned", fiber.StatusOK, ctx)
}
