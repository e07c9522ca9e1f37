package entity

import "time"

const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// MoveOrder is the finalized booking row. Immutable after creation except
// for status, which only the fulfillment backend updates.
type MoveOrder struct {
	OrderID            string    `db:"order_id"`
	PaymentID          string    `db:"payment_id"`
	UserID             string    `db:"user_id"`
	OriginAddress      string    `db:"origin_address"`
	OriginLat          float64   `db:"origin_lat"`
	OriginLng          float64   `db:"origin_lng"`
	DestinationAddress string    `db:"destination_address"`
	DestinationLat     float64   `db:"destination_lat"`
	DestinationLng     float64   `db:"destination_lng"`
	DistanceKm         float64   `db:"distance_km"`
	DurationMin        float64   `db:"duration_min"`
	Polyline           string    `db:"polyline"`
	Vehicle            string    `db:"vehicle"`
	MoveDate           string    `db:"move_date"`
	TimeSlots          []byte    `db:"time_slots"` // JSON
	Checklist          []byte    `db:"checklist"`  // JSON
	SubtotalCents      int64     `db:"subtotal_cents"`
	ShippingCents      int64     `db:"shipping_cents"`
	TaxCents           int64     `db:"tax_cents"`
	TotalCents         int64     `db:"total_cents"`
	Status             string    `db:"status"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}
