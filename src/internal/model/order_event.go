package model

import "time"

type Event interface {
	GetId() string
}

type OrderCreatedEvent struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	Vehicle    string    `json:"vehicle"`
	MoveDate   string    `json:"move_date"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e *OrderCreatedEvent) GetId() string {
	return e.EventID
}
