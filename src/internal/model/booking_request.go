package model

type SelectVehicleRequest struct {
	UserID  string `json:"-" validate:"required"`
	Vehicle string `json:"vehicle" validate:"required"`
}

type ScheduleRequest struct {
	UserID string   `json:"-" validate:"required"`
	Date   string   `json:"date"`
	Slots  []string `json:"slots"`
}

type ChecklistAddRequest struct {
	UserID string `json:"-" validate:"required"`
	Name   string `json:"name"`
}

type ChecklistItemRequest struct {
	UserID string `json:"-" validate:"required"`
	ItemID string `json:"-" validate:"required"`
}

type FinalizeRequest struct {
	UserID      string `json:"-" validate:"required"`
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	PaymentID   string `json:"paymentId" validate:"required"`
}

type BookingSessionResponse struct {
	State     BookingState    `json:"state"`
	Vehicle   string          `json:"vehicle,omitempty"`
	MoveDate  string          `json:"moveDate,omitempty"`
	TimeSlots []TimeSlot      `json:"timeSlots"`
	Checklist []ChecklistItem `json:"checklist"`
}
