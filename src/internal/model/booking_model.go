package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BookingState is the position of a draft in the booking flow. The flow is
// linear; re-invoking an earlier step is how the client navigates back.
type BookingState string

const (
	StateSelectingVehicle  BookingState = "SELECTING_VEHICLE"
	StateSelectingSchedule BookingState = "SELECTING_SCHEDULE"
	StateBuildingChecklist BookingState = "BUILDING_CHECKLIST"
	StateAwaitingPayment   BookingState = "AWAITING_PAYMENT"
	StateFinalized         BookingState = "FINALIZED"
)

var stateRank = map[BookingState]int{
	StateSelectingVehicle:  0,
	StateSelectingSchedule: 1,
	StateBuildingChecklist: 2,
	StateAwaitingPayment:   3,
	StateFinalized:         4,
}

func (s BookingState) Rank() int {
	return stateRank[s]
}

var (
	ErrIncompleteSchedule    = errors.New("schedule requires a date and at least one time slot")
	ErrUnknownTimeSlot       = errors.New("time slot is not in the daily catalog")
	ErrMultipleSlotsDisabled = errors.New("only one time slot may be selected")
	ErrInvalidChecklistItem  = errors.New("checklist item name must not be empty")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
	ErrVehicleNotSelected    = errors.New("a vehicle must be selected first")
	ErrSessionFinalized      = errors.New("booking session is already finalized")
)

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RouteEstimate is the routing collaborator's answer for one coordinate pair.
// It is consumed once by the pricing engine and never mutated.
type RouteEstimate struct {
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
	DistanceKm  float64    `json:"distanceKm"`
	DurationMin float64    `json:"durationMin"`
	Polyline    string     `json:"polyline,omitempty"`
}

// CostBreakdown carries every amount in integer minor units (cents) so that
// Total is always the exact sum of the other three.
type CostBreakdown struct {
	SubtotalCents int64 `json:"subtotalCents"`
	ShippingCents int64 `json:"shippingCents"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
}

type ChecklistItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

type TimeSlot struct {
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// BookingDraft is the in-progress booking aggregate. One draft per user
// session; it lives in the session cache until finalized or abandoned.
type BookingDraft struct {
	UserID     string          `json:"userId"`
	State      BookingState    `json:"state"`
	Vehicle    string          `json:"vehicle,omitempty"`
	MoveDate   string          `json:"moveDate,omitempty"`
	TimeSlots  []string        `json:"timeSlots,omitempty"`
	Checklist  []ChecklistItem `json:"checklist,omitempty"`
	Route      *RouteEstimate  `json:"route,omitempty"`
	Cost       *CostBreakdown  `json:"cost,omitempty"`
	NextItemID int             `json:"nextItemId"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func NewBookingDraft(userID string) *BookingDraft {
	now := time.Now().UTC()
	return &BookingDraft{
		UserID:     userID,
		State:      StateSelectingVehicle,
		NextItemID: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// advance moves the draft forward to target unless it is already further
// along. Backward moves happen implicitly by re-running earlier steps.
func (d *BookingDraft) advance(target BookingState) {
	if d.State.Rank() < target.Rank() {
		d.State = target
	}
}

// SelectVehicle records the vehicle choice and unlocks scheduling. The
// vehicle code has already been checked against the rate card by the caller.
func (d *BookingDraft) SelectVehicle(vehicle string) error {
	if d.State == StateFinalized {
		return ErrSessionFinalized
	}
	d.Vehicle = vehicle
	d.advance(StateSelectingSchedule)
	d.UpdatedAt = time.Now().UTC()
	return nil
}

// SetSchedule validates and stores the move date and time slots. Entering
// the checklist step requires both a date and at least one slot; the catalog
// bounds which slot labels exist and singleSlot enforces the one-slot policy.
// The draft is only mutated when every check passes.
func (d *BookingDraft) SetSchedule(date string, slots []string, catalog []string, singleSlot bool) error {
	if d.State == StateFinalized {
		return ErrSessionFinalized
	}
	if d.Vehicle == "" {
		return ErrVehicleNotSelected
	}
	if date == "" || len(slots) == 0 {
		return ErrIncompleteSchedule
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrIncompleteSchedule
	}
	if singleSlot && len(slots) > 1 {
		return ErrMultipleSlotsDisabled
	}
	seen := make(map[string]bool, len(slots))
	for _, slot := range slots {
		if !containsSlot(catalog, slot) {
			return ErrUnknownTimeSlot
		}
		seen[slot] = true
	}
	selected := make([]string, 0, len(seen))
	for _, slot := range catalog {
		if seen[slot] {
			selected = append(selected, slot)
		}
	}
	d.MoveDate = date
	d.TimeSlots = selected
	d.advance(StateBuildingChecklist)
	d.UpdatedAt = time.Now().UTC()
	return nil
}

func containsSlot(catalog []string, slot string) bool {
	for _, s := range catalog {
		if s == slot {
			return true
		}
	}
	return false
}

// AddChecklistItem appends an item with a session-unique id. Names are
// trimmed; an empty result is rejected.
func (d *BookingDraft) AddChecklistItem(name string) (*ChecklistItem, error) {
	if d.State == StateFinalized {
		return nil, ErrSessionFinalized
	}
	if d.State.Rank() < StateBuildingChecklist.Rank() {
		return nil, ErrIncompleteSchedule
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidChecklistItem
	}
	item := ChecklistItem{
		ID:   fmt.Sprintf("item-%d", d.NextItemID),
		Name: name,
	}
	d.NextItemID++
	d.Checklist = append(d.Checklist, item)
	d.UpdatedAt = time.Now().UTC()
	return &item, nil
}

func (d *BookingDraft) ToggleChecklistItem(itemID string) error {
	if d.State == StateFinalized {
		return ErrSessionFinalized
	}
	for i := range d.Checklist {
		if d.Checklist[i].ID == itemID {
			d.Checklist[i].Checked = !d.Checklist[i].Checked
			d.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrChecklistItemNotFound
}

func (d *BookingDraft) RemoveChecklistItem(itemID string) error {
	if d.State == StateFinalized {
		return ErrSessionFinalized
	}
	for i := range d.Checklist {
		if d.Checklist[i].ID == itemID {
			d.Checklist = append(d.Checklist[:i], d.Checklist[i+1:]...)
			d.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrChecklistItemNotFound
}

// ProceedToPayment moves the draft to the payment step. An empty checklist
// is legal.
func (d *BookingDraft) ProceedToPayment() error {
	if d.State == StateFinalized {
		return ErrSessionFinalized
	}
	if d.State.Rank() < StateBuildingChecklist.Rank() {
		return ErrIncompleteSchedule
	}
	d.advance(StateAwaitingPayment)
	d.UpdatedAt = time.Now().UTC()
	return nil
}

// SlotView renders the full daily catalog with the draft's selections, the
// shape the client shows on the schedule screen.
func (d *BookingDraft) SlotView(catalog []string) []TimeSlot {
	view := make([]TimeSlot, 0, len(catalog))
	for _, label := range catalog {
		view = append(view, TimeSlot{
			Label:    label,
			Selected: containsSlot(d.TimeSlots, label),
		})
	}
	return view
}
