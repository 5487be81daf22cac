package models

import "time"

// WizardStep is the cursor over the five screens of the voucher wizard.
type WizardStep int

const (
	StepSelection WizardStep = iota
	StepDateTime
	StepForm
	StepDesign
	StepPreview
)

func (s WizardStep) String() string {
	switch s {
	case StepSelection:
		return "selection"
	case StepDateTime:
		return "datetime"
	case StepForm:
		return "form"
	case StepDesign:
		return "design"
	case StepPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// Recipient holds the personal details entered on the form step.
// Note is the optional free-form remark from the form, distinct from the
// voucher message printed on the document.
type Recipient struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Note      string `json:"note,omitempty"`
}

// Session holds context for one run of the voucher wizard, from first
// screen to document download. The VoucherID is assigned once at session
// start and is never regenerated; it is the payload of the QR code on the
// rendered voucher.
type Session struct {
	VoucherID string     `json:"voucherId"`
	Step      WizardStep `json:"step"`

	MassageID  *int      `json:"massageId,omitempty"`
	Date       time.Time `json:"date,omitzero"` // zero means not chosen yet
	TimeSlotID *int      `json:"timeSlotId,omitempty"`
	DesignID   *int      `json:"designId,omitempty"`
	Message    string    `json:"message,omitempty"` // at most MaxMessageLen runes
	Recipient  Recipient `json:"recipient"`
}

// MaxMessageLen is the upper bound on the personal voucher message.
const MaxMessageLen = 150
