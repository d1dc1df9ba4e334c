package model_test

import (
	"testing"

	"basera/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, allowed: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, allowed: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, allowed: true},
		{name: "pending to pending", from: model.StatusPending, to: model.StatusPending, allowed: false},
		{name: "confirmed to pending", from: model.StatusConfirmed, to: model.StatusPending, allowed: false},
		{name: "confirmed to confirmed", from: model.StatusConfirmed, to: model.StatusConfirmed, allowed: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusPending, allowed: false},
		{name: "cancelled to confirmed", from: model.StatusCancelled, to: model.StatusConfirmed, allowed: false},
		{name: "cancelled to cancelled", from: model.StatusCancelled, to: model.StatusCancelled, allowed: false},
		{name: "unknown source status", from: "archived", to: model.StatusConfirmed, allowed: false},
		{name: "unknown target status", from: model.StatusPending, to: "archived", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, model.ValidStatus(model.StatusPending))
	assert.True(t, model.ValidStatus(model.StatusConfirmed))
	assert.True(t, model.ValidStatus(model.StatusCancelled))
	assert.False(t, model.ValidStatus("archived"))
	assert.False(t, model.ValidStatus(""))
}

func TestBooking_GetJoinQuery(t *testing.T) {
	join := model.Booking{}.GetJoinQuery()

	assert.Equal(t, "LEFT JOIN rooms ON rooms.id = bookings.room_id", join)
}
