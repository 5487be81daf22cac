package wizard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"spavoucher/models"
)

func intPtr(v int) *int { return &v }

func TestCanSubmitSelection(t *testing.T) {
	s := &models.Session{}
	assert.False(t, CanSubmitSelection(s))

	s.MassageID = intPtr(1)
	assert.True(t, CanSubmitSelection(s))
}

func TestCanSubmitSchedule(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		date time.Time
		slot *int
		want bool
	}{
		{"no date", time.Time{}, intPtr(1), false},
		{"no slot", time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local), nil, false},
		{"today rejected", time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), intPtr(1), false},
		{"past rejected", time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), intPtr(1), false},
		{"tomorrow accepted", time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local), intPtr(1), true},
		{"far future accepted", time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), intPtr(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &models.Session{Date: tt.date, TimeSlotID: tt.slot}
			assert.Equal(t, tt.want, CanSubmitSchedule(s, now))
		})
	}
}

// The guard takes now as an argument, so a session left open across midnight
// re-validates against the new tomorrow.
func TestCanSubmitScheduleRecomputesTomorrow(t *testing.T) {
	s := &models.Session{
		Date:       time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
		TimeSlotID: intPtr(1),
	}

	beforeMidnight := time.Date(2024, 3, 10, 23, 59, 0, 0, time.Local)
	assert.True(t, CanSubmitSchedule(s, beforeMidnight))

	afterMidnight := time.Date(2024, 3, 11, 0, 1, 0, 0, time.Local)
	assert.False(t, CanSubmitSchedule(s, afterMidnight))
}

func TestCanSubmitRecipient(t *testing.T) {
	complete := models.Recipient{
		FirstName: "Jane", LastName: "Doe",
		Email: "jane@example.com", Phone: "+49123456",
	}

	s := &models.Session{Recipient: complete}
	assert.True(t, CanSubmitRecipient(s))

	// Note stays optional.
	s.Recipient.Note = ""
	assert.True(t, CanSubmitRecipient(s))

	for _, blank := range []func(*models.Recipient){
		func(r *models.Recipient) { r.FirstName = " " },
		func(r *models.Recipient) { r.LastName = "" },
		func(r *models.Recipient) { r.Email = "" },
		func(r *models.Recipient) { r.Phone = "\t" },
	} {
		r := complete
		blank(&r)
		assert.False(t, CanSubmitRecipient(&models.Session{Recipient: r}))
	}
}

func TestCanSubmitDesign(t *testing.T) {
	s := &models.Session{}
	assert.False(t, CanSubmitDesign(s))

	s.DesignID = intPtr(3)
	assert.True(t, CanSubmitDesign(s))

	s.Message = strings.Repeat("a", models.MaxMessageLen)
	assert.True(t, CanSubmitDesign(s))

	s.Message = strings.Repeat("a", models.MaxMessageLen+1)
	assert.False(t, CanSubmitDesign(s))
}
