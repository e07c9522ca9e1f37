package model_test

import (
	"fmt"
	"testing"

	"moving-service/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotCatalog = []string{"08:00", "10:00", "12:00", "14:00", "16:00"}

func draftAtSchedule(t *testing.T) *model.BookingDraft {
	t.Helper()
	draft := model.NewBookingDraft("user-1")
	require.NoError(t, draft.SelectVehicle("van"))
	require.Equal(t, model.StateSelectingSchedule, draft.State)
	return draft
}

func draftAtChecklist(t *testing.T) *model.BookingDraft {
	t.Helper()
	draft := draftAtSchedule(t)
	require.NoError(t, draft.SetSchedule("2026-09-15", []string{"10:00"}, slotCatalog, false))
	require.Equal(t, model.StateBuildingChecklist, draft.State)
	return draft
}

func TestNewBookingDraft_StartsAtVehicleSelection(t *testing.T) {
	draft := model.NewBookingDraft("user-1")
	assert.Equal(t, model.StateSelectingVehicle, draft.State)
	assert.Empty(t, draft.Vehicle)
	assert.Empty(t, draft.Checklist)
}

func TestSetSchedule_RequiresVehicle(t *testing.T) {
	draft := model.NewBookingDraft("user-1")
	err := draft.SetSchedule("2026-09-15", []string{"10:00"}, slotCatalog, false)
	assert.ErrorIs(t, err, model.ErrVehicleNotSelected)
	assert.Equal(t, model.StateSelectingVehicle, draft.State)
}

func TestSetSchedule_GuardEnumeration(t *testing.T) {
	dates := []string{"", "2026-09-15"}
	slotSets := [][]string{nil, {"10:00"}, {"10:00", "14:00"}}

	for _, date := range dates {
		for _, slots := range slotSets {
			name := fmt.Sprintf("date=%q slots=%d", date, len(slots))
			t.Run(name, func(t *testing.T) {
				draft := draftAtSchedule(t)
				err := draft.SetSchedule(date, slots, slotCatalog, false)

				if date != "" && len(slots) >= 1 {
					assert.NoError(t, err)
					assert.Equal(t, model.StateBuildingChecklist, draft.State)
				} else {
					assert.ErrorIs(t, err, model.ErrIncompleteSchedule)
					assert.Equal(t, model.StateSelectingSchedule, draft.State)
					assert.Empty(t, draft.MoveDate, "failed transition must not mutate the draft")
					assert.Empty(t, draft.TimeSlots)
				}
			})
		}
	}
}

func TestSetSchedule_RejectsMalformedDate(t *testing.T) {
	draft := draftAtSchedule(t)
	err := draft.SetSchedule("next tuesday", []string{"10:00"}, slotCatalog, false)
	assert.ErrorIs(t, err, model.ErrIncompleteSchedule)
}

func TestSetSchedule_RejectsUnknownSlot(t *testing.T) {
	draft := draftAtSchedule(t)
	err := draft.SetSchedule("2026-09-15", []string{"03:30"}, slotCatalog, false)
	assert.ErrorIs(t, err, model.ErrUnknownTimeSlot)
}

func TestSetSchedule_SingleSlotPolicy(t *testing.T) {
	draft := draftAtSchedule(t)
	err := draft.SetSchedule("2026-09-15", []string{"10:00", "14:00"}, slotCatalog, true)
	assert.ErrorIs(t, err, model.ErrMultipleSlotsDisabled)

	require.NoError(t, draft.SetSchedule("2026-09-15", []string{"10:00"}, slotCatalog, true))
	assert.Equal(t, []string{"10:00"}, draft.TimeSlots)
}

func TestSetSchedule_DeduplicatesAndOrdersSlots(t *testing.T) {
	draft := draftAtSchedule(t)
	require.NoError(t, draft.SetSchedule("2026-09-15", []string{"14:00", "10:00", "14:00"}, slotCatalog, false))
	assert.Equal(t, []string{"10:00", "14:00"}, draft.TimeSlots)
}

func TestAddChecklistItem_BeforeScheduleFails(t *testing.T) {
	draft := draftAtSchedule(t)
	_, err := draft.AddChecklistItem("bubble wrap")
	assert.ErrorIs(t, err, model.ErrIncompleteSchedule)
}

func TestAddChecklistItem_TrimsAndRejectsEmpty(t *testing.T) {
	draft := draftAtChecklist(t)

	item, err := draft.AddChecklistItem("  pack the kitchen  ")
	require.NoError(t, err)
	assert.Equal(t, "pack the kitchen", item.Name)
	assert.False(t, item.Checked)

	_, err = draft.AddChecklistItem("   ")
	assert.ErrorIs(t, err, model.ErrInvalidChecklistItem)
}

func TestAddChecklistItem_IDsAreSessionUnique(t *testing.T) {
	draft := draftAtChecklist(t)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		item, err := draft.AddChecklistItem(fmt.Sprintf("box %d", i))
		require.NoError(t, err)
		assert.False(t, seen[item.ID], "duplicate checklist id %s", item.ID)
		seen[item.ID] = true
	}

	// removal must not free an id for reuse
	require.NoError(t, draft.RemoveChecklistItem("item-3"))
	item, err := draft.AddChecklistItem("late addition")
	require.NoError(t, err)
	assert.False(t, seen[item.ID], "reused checklist id %s", item.ID)
}

func TestToggleChecklistItem(t *testing.T) {
	draft := draftAtChecklist(t)
	item, err := draft.AddChecklistItem("disassemble bed")
	require.NoError(t, err)

	require.NoError(t, draft.ToggleChecklistItem(item.ID))
	assert.True(t, draft.Checklist[0].Checked)
	require.NoError(t, draft.ToggleChecklistItem(item.ID))
	assert.False(t, draft.Checklist[0].Checked)

	assert.ErrorIs(t, draft.ToggleChecklistItem("item-99"), model.ErrChecklistItemNotFound)
}

func TestProceedToPayment_EmptyChecklistIsLegal(t *testing.T) {
	draft := draftAtChecklist(t)
	require.NoError(t, draft.ProceedToPayment())
	assert.Equal(t, model.StateAwaitingPayment, draft.State)
	assert.Empty(t, draft.Checklist)
}

func TestProceedToPayment_BeforeScheduleFails(t *testing.T) {
	draft := draftAtSchedule(t)
	assert.Error(t, draft.ProceedToPayment())
	assert.Equal(t, model.StateSelectingSchedule, draft.State)
}

func TestBackwardNavigation_KeepsForwardProgress(t *testing.T) {
	draft := draftAtChecklist(t)
	require.NoError(t, draft.ProceedToPayment())

	// the user goes back and swaps the vehicle; the flow position is kept
	require.NoError(t, draft.SelectVehicle("truck"))
	assert.Equal(t, "truck", draft.Vehicle)
	assert.Equal(t, model.StateAwaitingPayment, draft.State)

	// and may amend the schedule too
	require.NoError(t, draft.SetSchedule("2026-09-16", []string{"08:00"}, slotCatalog, false))
	assert.Equal(t, "2026-09-16", draft.MoveDate)
	assert.Equal(t, model.StateAwaitingPayment, draft.State)
}

func TestSlotView_RendersCatalogWithSelections(t *testing.T) {
	draft := draftAtChecklist(t)
	view := draft.SlotView(slotCatalog)

	require.Len(t, view, len(slotCatalog))
	for _, slot := range view {
		assert.Equal(t, slot.Label == "10:00", slot.Selected)
	}
}
