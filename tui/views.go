package tui

import (
	"fmt"
	"strings"

	"spavoucher/models"
	"spavoucher/services/catalog"
	"spavoucher/services/voucher"
)

// View renders the current wizard step.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("Massage Gutschein") + "\n\n")

	switch m.svc.Session().Step {
	case models.StepSelection:
		b.WriteString(m.viewSelection())
	case models.StepDateTime:
		b.WriteString(m.viewDateTime())
	case models.StepForm:
		b.WriteString(m.viewForm())
	case models.StepDesign:
		b.WriteString(m.viewDesign())
	case models.StepPreview:
		b.WriteString(m.viewPreview())
	}

	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

func (m Model) viewSelection() string {
	var b strings.Builder
	b.WriteString("  " + labelStyle.Render("Wählen Sie Ihre Massage") + "\n\n")

	session := m.svc.Session()
	for i, opt := range catalog.MassageOptions() {
		cursor := "  "
		if i == m.massageCursor {
			cursor = cursorStyle.Render("> ")
		}
		marker := "( )"
		name := opt.Name
		if session.MassageID != nil && *session.MassageID == opt.ID {
			marker = selectedStyle.Render("(x)")
			name = selectedStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, marker, name))
		b.WriteString("        " + dimStyle.Render(fmt.Sprintf("%s · €%s", opt.Duration, opt.Price.String())) + "\n\n")
	}
	return b.String()
}

func (m Model) viewDateTime() string {
	var b strings.Builder
	b.WriteString("  " + labelStyle.Render("Wählen Sie Datum und Uhrzeit") + "\n\n")

	b.WriteString("  Datum (JJJJ-MM-TT, frühestens morgen)\n")
	b.WriteString("  " + m.dateInput.View() + "\n\n")

	b.WriteString("  Verfügbare Zeiten\n")
	session := m.svc.Session()
	for i, slot := range catalog.TimeSlots() {
		cursor := "  "
		if m.slotFocused && i == m.slotCursor {
			cursor = cursorStyle.Render("> ")
		}
		label := slot.Time
		if session.TimeSlotID != nil && *session.TimeSlotID == slot.ID {
			label = selectedStyle.Render(label + " ✓")
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", cursor, label))
	}
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString("  " + labelStyle.Render("Persönliche Informationen") + "\n\n")

	for i, input := range m.formInputs {
		label := m.formLabels[i]
		if i == m.focusedInput {
			b.WriteString("  " + cursorStyle.Render(label) + "\n")
		} else {
			b.WriteString("  " + dimStyle.Render(label) + "\n")
		}
		b.WriteString("  " + input.View() + "\n\n")
	}
	return b.String()
}

func (m Model) viewDesign() string {
	var b strings.Builder
	b.WriteString("  " + labelStyle.Render("Wählen Sie Ihr Gutschein Design") + "\n\n")

	session := m.svc.Session()
	for i, design := range catalog.VoucherDesigns() {
		cursor := "  "
		if !m.messageFocused && i == m.designCursor {
			cursor = cursorStyle.Render("> ")
		}
		marker := "( )"
		name := design.Name
		if session.DesignID != nil && *session.DesignID == design.ID {
			marker = selectedStyle.Render("(x)")
			name = selectedStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, marker, name))
	}

	b.WriteString("\n  Persönliche Nachricht für den Gutschein (max. 150 Zeichen)\n")
	b.WriteString("  " + m.messageInput.View() + "\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%d/%d Zeichen", len([]rune(m.messageInput.Value())), models.MaxMessageLen)) + "\n")
	return b.String()
}

func (m Model) viewPreview() string {
	var b strings.Builder
	b.WriteString("  " + labelStyle.Render("Gutschein Vorschau") + "\n\n")

	doc, err := voucher.BuildDocument(m.svc.Session())
	if err != nil {
		b.WriteString("  " + errorStyle.Render(fmt.Sprintf("Vorschau nicht verfügbar: %v", err)) + "\n")
		return b.String()
	}

	var card strings.Builder
	card.WriteString(titleStyle.Render(doc.Title) + "\n")
	card.WriteString(dimStyle.Render("Design: "+doc.DesignName) + "\n\n")
	card.WriteString(doc.ServiceName + "\n")
	card.WriteString(doc.DurationLine + "\n")
	card.WriteString(doc.PriceLine + "\n\n")
	card.WriteString(doc.AppointmentLine + "\n")
	if doc.Message != "" {
		card.WriteString("\n\"" + doc.Message + "\"\n")
	}
	card.WriteString("\n" + doc.RecipientLine + "\n")
	card.WriteString(doc.ContactLine + "\n")
	card.WriteString(dimStyle.Render(doc.CodeCaption) + "\n")

	b.WriteString(indent(previewStyle.Render(card.String())) + "\n")

	switch {
	case m.rendering:
		b.WriteString("\n  " + dimStyle.Render("Gutschein wird erstellt...") + "\n")
	case m.renderErr != nil:
		b.WriteString("\n  " + errorStyle.Render(fmt.Sprintf("Fehler beim Erstellen: %v", m.renderErr)) + "\n")
	case m.savedPath != "":
		b.WriteString("\n  " + successStyle.Render("Gespeichert: "+m.savedPath) + "\n")
	}
	return b.String()
}

func (m Model) renderFooter() string {
	var hints []string
	switch m.svc.Session().Step {
	case models.StepSelection:
		hints = []string{"j/k wählen", "enter weiter", "q beenden"}
	case models.StepDateTime:
		hints = []string{"tab Datum/Zeiten", "space Zeit wählen", "enter weiter", "esc zurück"}
	case models.StepForm:
		hints = []string{"tab nächstes Feld", "enter weiter", "esc zurück"}
	case models.StepDesign:
		hints = []string{"j/k wählen", "space Design wählen", "tab Nachricht", "enter Vorschau", "esc zurück"}
	case models.StepPreview:
		hints = []string{"enter herunterladen", "esc zurück", "q beenden"}
	}
	return "  " + dimStyle.Render(strings.Join(hints, " · ")) + "\n"
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
