package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"moving-service/src/internal/entity"
	"moving-service/src/internal/model"
	"moving-service/src/internal/usecase"
	httpError "moving-service/src/pkg/http-error"
	"moving-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedOrder(orderID, userID string, createdAt time.Time) entity.MoveOrder {
	slots, _ := json.Marshal([]string{"10:00"})
	checklist, _ := json.Marshal([]model.ChecklistItem{{ID: "item-1", Name: "pack books", Checked: true}})
	return entity.MoveOrder{
		OrderID:            orderID,
		PaymentID:          "pay_1",
		UserID:             userID,
		OriginAddress:      "12 Elm Street",
		OriginLat:          -6.2,
		OriginLng:          106.8,
		DestinationAddress: "99 Oak Avenue",
		DestinationLat:     -6.9,
		DestinationLng:     107.6,
		DistanceKm:         20,
		DurationMin:        40,
		Vehicle:            "van",
		MoveDate:           "2026-09-15",
		TimeSlots:          slots,
		Checklist:          checklist,
		SubtotalCents:      75000,
		ShippingCents:      4000,
		TaxCents:           7900,
		TotalCents:         86900,
		Status:             entity.OrderStatusPending,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
	}
}

func newOrderUseCase(store *fakeOrderStore) *usecase.OrderUseCase {
	return usecase.NewOrderUseCase(log.Log{}, validator.New(), store)
}

func TestListOrders_NewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeOrderStore{orders: []entity.MoveOrder{
		storedOrder("order-1", "user-1", base),
		storedOrder("order-2", "user-1", base.Add(time.Hour)),
		storedOrder("order-3", "user-2", base.Add(2*time.Hour)),
	}}
	uc := newOrderUseCase(store)

	result := uc.ListOrders(context.Background(), "user-1")
	require.NoError(t, result.Error)

	orders, ok := result.Data.([]*model.OrderResponse)
	require.True(t, ok)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-2", orders[0].OrderID)
	assert.Equal(t, "order-1", orders[1].OrderID)
}

func TestGetOrder_FullFieldMapping(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeOrderStore{orders: []entity.MoveOrder{storedOrder("order-1", "user-1", created)}}
	uc := newOrderUseCase(store)

	result := uc.GetOrder(context.Background(), &model.OrderDetailRequest{UserID: "user-1", OrderID: "order-1"})
	require.NoError(t, result.Error)

	order, ok := result.Data.(*model.OrderResponse)
	require.True(t, ok)
	assert.Equal(t, "order-1", order.OrderID)
	assert.Equal(t, "pay_1", order.PaymentID)
	assert.Equal(t, "12 Elm Street", order.Origin)
	assert.Equal(t, "99 Oak Avenue", order.Destination)
	assert.Equal(t, model.Coordinate{Latitude: -6.2, Longitude: 106.8}, order.OriginCoord)
	assert.Equal(t, model.Coordinate{Latitude: -6.9, Longitude: 107.6}, order.DestCoord)
	assert.Equal(t, 20.0, order.DistanceKm)
	assert.Equal(t, 40.0, order.DurationMin)
	assert.Equal(t, "van", order.Vehicle)
	assert.Equal(t, "2026-09-15", order.MoveDate)
	assert.Equal(t, []string{"10:00"}, order.TimeSlots)
	require.Len(t, order.Checklist, 1)
	assert.Equal(t, "pack books", order.Checklist[0].Name)
	assert.True(t, order.Checklist[0].Checked)
	assert.Equal(t, int64(86900), order.Cost.TotalCents)
	assert.Equal(t, "869.00", order.DisplayTotal)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, created, order.CreatedAt)
}

func TestGetOrder_ScopedToUser(t *testing.T) {
	store := &fakeOrderStore{orders: []entity.MoveOrder{
		storedOrder("order-1", "user-1", time.Now().UTC()),
	}}
	uc := newOrderUseCase(store)

	result := uc.GetOrder(context.Background(), &model.OrderDetailRequest{UserID: "user-2", OrderID: "order-1"})
	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, 404, commonErr.Code)
}
