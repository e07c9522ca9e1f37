package http

import (
	"moving-service/src/internal/delivery/http/middleware"
	"moving-service/src/internal/model"
	"moving-service/src/internal/usecase"
	"moving-service/src/pkg/log"
	"moving-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	Log     log.Log
	UseCase *usecase.OrderUseCase
}

func NewOrderController(useCase *usecase.OrderUseCase, logger log.Log) *OrderController {
	return &OrderController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.ListOrders(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Orders", fiber.StatusOK, ctx)
}

func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.OrderDetailRequest{
		UserID:  auth.UserID,
		OrderID: ctx.Params("id"),
	}

	result := c.UseCase.GetOrder(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Detail", fiber.StatusOK, ctx)
}
