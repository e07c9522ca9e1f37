package model

import "time"

type OrderDetailRequest struct {
	UserID  string `json:"-" validate:"required"`
	OrderID string `json:"-" validate:"required"`
}

type OrderResponse struct {
	OrderID      string          `json:"orderId"`
	PaymentID    string          `json:"paymentId"`
	UserID       string          `json:"userId"`
	Origin       string          `json:"origin"`
	Destination  string          `json:"destination"`
	OriginCoord  Coordinate      `json:"originCoordinate"`
	DestCoord    Coordinate      `json:"destinationCoordinate"`
	DistanceKm   float64         `json:"distanceKm"`
	DurationMin  float64         `json:"durationMin"`
	Vehicle      string          `json:"vehicle"`
	MoveDate     string          `json:"moveDate"`
	TimeSlots    []string        `json:"timeSlots"`
	Checklist    []ChecklistItem `json:"checklist"`
	Cost         CostBreakdown   `json:"cost"`
	DisplayTotal string          `json:"displayTotal"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}
