// Package voucher composes a completed wizard session into the printable
// gift voucher: first an intermediate Document carrying the exact region
// strings, then a fixed-layout A4 PDF with the session's QR code embedded.
package voucher

import (
	"fmt"

	"spavoucher/models"
	"spavoucher/services/catalog"
)

// FileName is the fixed name of the downloadable artifact.
const FileName = "massage-gutschein.pdf"

// Title is the banner headline on every voucher.
const Title = "Massage Gutschein"

// footerText is the fixed validity notice at the bottom of the page.
const footerText = "Dieser Gutschein wurde digital erstellt und ist gültig für ein Jahr ab Ausstellungsdatum."

// Document is the resolved, render-ready content of one voucher. All
// strings are final: the PDF layer only places them, it never rewrites
// them. The same strings feed the terminal preview, so what the user sees
// is what gets printed.
type Document struct {
	Title string

	ServiceName     string
	DurationLine    string // "Dauer: 90 min"
	PriceLine       string // "Preis: €95"
	AppointmentLine string // "Termin: 2024-06-01 um 10:00 Uhr"

	// CodePayload is the voucher id encoded in the QR region; CodeCaption
	// is its human-readable form printed beneath.
	CodePayload string
	CodeCaption string

	Message string // empty when the buyer wrote none

	RecipientLine string // "Für: Jane Doe"
	ContactLine   string // "Kontakt: jane@example.com | +49123456"

	Footer string

	// DesignImageURL is fetched at render time for the banner region.
	DesignImageURL string
	DesignName     string
}

// BuildDocument resolves the session's catalog references and assembles the
// voucher content. It fails only on an invalid catalog reference, which
// callers treat as a programming error since ids always originate from the
// catalog.
func BuildDocument(s *models.Session) (Document, error) {
	if s.MassageID == nil || s.TimeSlotID == nil || s.DesignID == nil {
		return Document{}, fmt.Errorf("session %s is incomplete", s.VoucherID)
	}

	massage, err := catalog.MassageOptionByID(*s.MassageID)
	if err != nil {
		return Document{}, fmt.Errorf("build document: %w", err)
	}
	slot, err := catalog.TimeSlotByID(*s.TimeSlotID)
	if err != nil {
		return Document{}, fmt.Errorf("build document: %w", err)
	}
	design, err := catalog.VoucherDesignByID(*s.DesignID)
	if err != nil {
		return Document{}, fmt.Errorf("build document: %w", err)
	}

	return Document{
		Title:           Title,
		ServiceName:     massage.Name,
		DurationLine:    fmt.Sprintf("Dauer: %s", massage.Duration),
		PriceLine:       fmt.Sprintf("Preis: €%s", massage.Price.String()),
		AppointmentLine: fmt.Sprintf("Termin: %s um %s Uhr", s.Date.Format("2006-01-02"), slot.Time),
		CodePayload:     s.VoucherID,
		CodeCaption:     fmt.Sprintf("Gutschein ID: %s", s.VoucherID),
		Message:         s.Message,
		RecipientLine:   fmt.Sprintf("Für: %s %s", s.Recipient.FirstName, s.Recipient.LastName),
		ContactLine:     fmt.Sprintf("Kontakt: %s | %s", s.Recipient.Email, s.Recipient.Phone),
		Footer:          footerText,
		DesignImageURL:  design.ImageURL,
		DesignName:      design.Name,
	}, nil
}
