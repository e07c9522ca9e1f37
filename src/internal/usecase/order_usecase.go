package usecase

import (
	"context"
	"errors"
	"fmt"

	"moving-service/src/internal/model"
	"moving-service/src/internal/model/converter"
	"moving-service/src/internal/repository"
	httpError "moving-service/src/pkg/http-error"
	"moving-service/src/pkg/log"
	"moving-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// OrderUseCase is the read side for finalized orders. Status is display
// only; the fulfillment backend owns status mutations.
type OrderUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	OrderRepository repository.OrderRepositoryInterface
}

func NewOrderUseCase(
	logger log.Log,
	validate *validator.Validate,
	orderRepository repository.OrderRepositoryInterface,
) *OrderUseCase {
	return &OrderUseCase{
		Log:             logger,
		Validate:        validate,
		OrderRepository: orderRepository,
	}
}

func (c *OrderUseCase) ListOrders(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	orders, err := c.OrderRepository.ListByUser(ctx, userID)
	if err != nil {
		errObj := httpError.NewBadGateway()
		errObj.Message = "could not load orders, please retry"
		result.Error = errObj
		c.Log.Error("order-usecase", err.Error(), "ListOrders", userID)
		return result
	}

	responses := make([]*model.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, converter.OrderToResponse(&orders[i]))
	}

	result.Data = responses
	return result
}

func (c *OrderUseCase) GetOrder(ctx context.Context, request *model.OrderDetailRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("order-usecase", err.Error(), "GetOrder", utils.ConvertString(request))
		return result
	}

	order, err := c.OrderRepository.FindByID(ctx, request.OrderID, request.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("order %s not found", request.OrderID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewBadGateway()
		errObj.Message = "could not load order, please retry"
		result.Error = errObj
		c.Log.Error("order-usecase", err.Error(), "GetOrder", request.OrderID)
		return result
	}

	result.Data = converter.OrderToResponse(order)
	return result
}
