package wizard

import (
	"strings"
	"time"

	"spavoucher/models"
)

// Admission guards for the wizard's forward transitions. Each is a pure
// predicate over the session; none mutates state or touches the clock except
// CanSubmitSchedule, which takes the evaluation time as an argument.

// CanSubmitSelection admits the move from the massage selection to the
// date/time step.
func CanSubmitSelection(s *models.Session) bool {
	return s.MassageID != nil
}

// CanSubmitSchedule admits the move from the date/time step to the form
// step. The earliest bookable day is tomorrow relative to now; same-day and
// past dates are rejected. A session left open across midnight re-validates
// against the new tomorrow on the next attempt.
func CanSubmitSchedule(s *models.Session, now time.Time) bool {
	if s.Date.IsZero() || s.TimeSlotID == nil {
		return false
	}
	tomorrow := now.AddDate(0, 0, 1)
	earliest := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())
	return !s.Date.Before(earliest)
}

// CanSubmitRecipient admits the move from the form step to the design step.
// All contact fields are required; the note is optional.
func CanSubmitRecipient(s *models.Session) bool {
	r := s.Recipient
	return strings.TrimSpace(r.FirstName) != "" &&
		strings.TrimSpace(r.LastName) != "" &&
		strings.TrimSpace(r.Email) != "" &&
		strings.TrimSpace(r.Phone) != ""
}

// CanSubmitDesign admits the move from the design step to the preview.
func CanSubmitDesign(s *models.Session) bool {
	return s.DesignID != nil && len([]rune(s.Message)) <= models.MaxMessageLen
}
