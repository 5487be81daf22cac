package wizard

import (
	"time"

	"spavoucher/models"
)

// SessionService defines the interface for driving a single voucher session
// through the wizard's steps. Field setters validate catalog references but
// never move the step cursor; only Next and Back do.
type SessionService interface {
	Session() *models.Session

	SelectMassage(id int) error
	SetDate(date time.Time)
	SelectSlot(id int) error
	SetRecipient(r models.Recipient)
	SelectDesign(id int) error
	SetMessage(message string)

	// Next attempts the forward transition for the current step. It reports
	// whether the step advanced; a rejected attempt leaves the session
	// untouched and may be retried.
	Next() bool

	// Back moves to the previous step, preserving all entered data. It
	// reports whether a move happened (false only on the first step).
	Back() bool
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	session *models.Session

	// now supplies the clock used by the schedule guard so that "tomorrow"
	// is recomputed on every attempt.
	now func() time.Time
}

var _ SessionService = (*DefaultSessionService)(nil)
