// Package wizard holds the voucher wizard's session state machine: a single
// owned Session advanced strictly forward through validated submissions and
// freely backward without data loss.
package wizard

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"spavoucher/models"
	"spavoucher/services/catalog"
)

// NewSessionService creates a fresh session on the first step with a unique
// voucher id. The id is generated exactly once and reused for the lifetime
// of the session.
func NewSessionService() *DefaultSessionService {
	return &DefaultSessionService{
		session: &models.Session{
			VoucherID: uuid.New().String(),
			Step:      models.StepSelection,
		},
		now: time.Now,
	}
}

// Session returns the owned session. Callers treat it as read-only and
// mutate only through the service.
func (s *DefaultSessionService) Session() *models.Session {
	return s.session
}

// SelectMassage records the chosen massage option.
func (s *DefaultSessionService) SelectMassage(id int) error {
	if _, err := catalog.MassageOptionByID(id); err != nil {
		return fmt.Errorf("select massage: %w", err)
	}
	s.session.MassageID = &id
	return nil
}

// SetDate records the desired appointment date. Validity against "tomorrow"
// is checked by the schedule guard on submission, not here.
func (s *DefaultSessionService) SetDate(date time.Time) {
	s.session.Date = date
}

// SelectSlot records the chosen appointment window.
func (s *DefaultSessionService) SelectSlot(id int) error {
	if _, err := catalog.TimeSlotByID(id); err != nil {
		return fmt.Errorf("select slot: %w", err)
	}
	s.session.TimeSlotID = &id
	return nil
}

// SetRecipient records the personal details entered on the form step.
func (s *DefaultSessionService) SetRecipient(r models.Recipient) {
	s.session.Recipient = r
}

// SelectDesign records the chosen voucher design.
func (s *DefaultSessionService) SelectDesign(id int) error {
	if _, err := catalog.VoucherDesignByID(id); err != nil {
		return fmt.Errorf("select design: %w", err)
	}
	s.session.DesignID = &id
	return nil
}

// SetMessage records the personal voucher message, truncated to
// models.MaxMessageLen runes so the bound holds at all times.
func (s *DefaultSessionService) SetMessage(message string) {
	runes := []rune(message)
	if len(runes) > models.MaxMessageLen {
		runes = runes[:models.MaxMessageLen]
	}
	s.session.Message = string(runes)
}

// Next attempts the forward transition for the current step. The guard is
// re-evaluated on every call; a rejection is a no-op, not an error.
func (s *DefaultSessionService) Next() bool {
	sess := s.session
	switch sess.Step {
	case models.StepSelection:
		if !CanSubmitSelection(sess) {
			return false
		}
		sess.Step = models.StepDateTime
	case models.StepDateTime:
		if !CanSubmitSchedule(sess, s.now()) {
			return false
		}
		sess.Step = models.StepForm
	case models.StepForm:
		if !CanSubmitRecipient(sess) {
			return false
		}
		sess.Step = models.StepDesign
	case models.StepDesign:
		if !CanSubmitDesign(sess) {
			return false
		}
		sess.Step = models.StepPreview
	default:
		// Preview is terminal; generating the document does not change step.
		return false
	}
	return true
}

// Back moves one step backward. Entered data is preserved.
func (s *DefaultSessionService) Back() bool {
	if s.session.Step == models.StepSelection {
		return false
	}
	s.session.Step--
	return true
}
