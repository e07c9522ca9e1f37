package converter

import (
	"encoding/json"
	"time"

	"moving-service/src/internal/entity"
	"moving-service/src/internal/model"
	"moving-service/src/pkg/utils"
)

// DraftToOrder assembles the immutable order row from a finalized draft and
// its resolved route and cost. Checklist and slots go in as JSON columns.
func DraftToOrder(draft *model.BookingDraft, req *model.FinalizeRequest, route *model.RouteEstimate, cost model.CostBreakdown, orderID string, now time.Time) (*entity.MoveOrder, error) {
	slots, err := json.Marshal(draft.TimeSlots)
	if err != nil {
		return nil, err
	}
	checklist, err := json.Marshal(draft.Checklist)
	if err != nil {
		return nil, err
	}

	return &entity.MoveOrder{
		OrderID:            orderID,
		PaymentID:          req.PaymentID,
		UserID:             draft.UserID,
		OriginAddress:      req.Origin,
		OriginLat:          route.Origin.Latitude,
		OriginLng:          route.Origin.Longitude,
		DestinationAddress: req.Destination,
		DestinationLat:     route.Destination.Latitude,
		DestinationLng:     route.Destination.Longitude,
		DistanceKm:         route.DistanceKm,
		DurationMin:        route.DurationMin,
		Polyline:           route.Polyline,
		Vehicle:            draft.Vehicle,
		MoveDate:           draft.MoveDate,
		TimeSlots:          slots,
		Checklist:          checklist,
		SubtotalCents:      cost.SubtotalCents,
		ShippingCents:      cost.ShippingCents,
		TaxCents:           cost.TaxCents,
		TotalCents:         cost.TotalCents,
		Status:             entity.OrderStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

func OrderToResponse(order *entity.MoveOrder) *model.OrderResponse {
	var slots []string
	_ = json.Unmarshal(order.TimeSlots, &slots)
	var checklist []model.ChecklistItem
	_ = json.Unmarshal(order.Checklist, &checklist)

	return &model.OrderResponse{
		OrderID:     order.OrderID,
		PaymentID:   order.PaymentID,
		UserID:      order.UserID,
		Origin:      order.OriginAddress,
		Destination: order.DestinationAddress,
		OriginCoord: model.Coordinate{
			Latitude:  order.OriginLat,
			Longitude: order.OriginLng,
		},
		DestCoord: model.Coordinate{
			Latitude:  order.DestinationLat,
			Longitude: order.DestinationLng,
		},
		DistanceKm:  order.DistanceKm,
		DurationMin: order.DurationMin,
		Vehicle:     order.Vehicle,
		MoveDate:    order.MoveDate,
		TimeSlots:   slots,
		Checklist:   checklist,
		Cost: model.CostBreakdown{
			SubtotalCents: order.SubtotalCents,
			ShippingCents: order.ShippingCents,
			TaxCents:      order.TaxCents,
			TotalCents:    order.TotalCents,
		},
		DisplayTotal: utils.FormatCents(order.TotalCents),
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
}

func OrderToEvent(order *entity.MoveOrder, eventID string) *model.OrderCreatedEvent {
	return &model.OrderCreatedEvent{
		EventID:    eventID,
		OrderID:    order.OrderID,
		UserID:     order.UserID,
		Vehicle:    order.Vehicle,
		MoveDate:   order.MoveDate,
		TotalCents: order.TotalCents,
		CreatedAt:  order.CreatedAt,
	}
}

func DraftToSession(draft *model.BookingDraft, slotCatalog []string) *model.BookingSessionResponse {
	checklist := draft.Checklist
	if checklist == nil {
		checklist = []model.ChecklistItem{}
	}
	return &model.BookingSessionResponse{
		State:     draft.State,
		Vehicle:   draft.Vehicle,
		MoveDate:  draft.MoveDate,
		TimeSlots: draft.SlotView(slotCatalog),
		Checklist: checklist,
	}
}
