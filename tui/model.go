// Package tui is the terminal front-end of the voucher wizard. It owns no
// booking state of its own: every selection is pushed into the wizard
// session service, and every forward move is gated by the service's guards.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"spavoucher/models"
	"spavoucher/services/catalog"
	"spavoucher/services/voucher"
	"spavoucher/services/wizard"
)

const dateLayout = "2006-01-02"

// voucherSavedMsg reports the outcome of the download action.
type voucherSavedMsg struct {
	path string
	err  error
}

// Model implements tea.Model for the five-step voucher wizard.
type Model struct {
	svc      wizard.SessionService
	renderer voucher.Renderer

	outputDir string

	// Step: selection
	massageCursor int

	// Step: datetime
	dateInput   textinput.Model
	slotFocused bool
	slotCursor  int

	// Step: form
	formInputs   []textinput.Model
	formLabels   []string
	focusedInput int

	// Step: design
	designCursor   int
	messageFocused bool
	messageInput   textinput.Model

	// Step: preview
	rendering bool
	savedPath string
	renderErr error

	width int
}

// New creates the wizard UI bound to a fresh session.
func New(svc wizard.SessionService, renderer voucher.Renderer, outputDir string) Model {
	date := textinput.New()
	date.Placeholder = time.Now().AddDate(0, 0, 1).Format(dateLayout)
	date.CharLimit = 10
	date.Width = 14
	date.Focus()

	labels := []string{"Vorname", "Nachname", "E-Mail", "Telefon", "Nachricht (optional)"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 128
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[0].Focus()

	message := textinput.New()
	message.Placeholder = "Schreiben Sie hier Ihre persönliche Nachricht..."
	message.CharLimit = models.MaxMessageLen
	message.Width = 60

	return Model{
		svc:          svc,
		renderer:     renderer,
		outputDir:    outputDir,
		dateInput:    date,
		formInputs:   inputs,
		formLabels:   labels,
		messageInput: message,
		width:        80,
	}
}

// Init is called when the program starts.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width < 60 {
			m.width = 60
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case voucherSavedMsg:
		m.rendering = false
		m.savedPath = msg.path
		m.renderErr = msg.err
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.svc.Session().Step {
	case models.StepSelection:
		return m.handleSelectionKey(msg.String())
	case models.StepDateTime:
		return m.handleDateTimeKey(msg)
	case models.StepForm:
		return m.handleFormKey(msg)
	case models.StepDesign:
		return m.handleDesignKey(msg)
	case models.StepPreview:
		return m.handlePreviewKey(msg.String())
	}
	return m, nil
}

// Step 1: massage selection.
func (m Model) handleSelectionKey(key string) (tea.Model, tea.Cmd) {
	options := catalog.MassageOptions()
	switch key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.massageCursor > 0 {
			m.massageCursor--
		}
	case "down", "j":
		if m.massageCursor < len(options)-1 {
			m.massageCursor++
		}
	case "enter":
		if err := m.svc.SelectMassage(options[m.massageCursor].ID); err == nil {
			m.svc.Next()
		}
	}
	return m, nil
}

// Step 2: date and time slot.
func (m Model) handleDateTimeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slots := catalog.TimeSlots()
	switch msg.String() {
	case "esc":
		m.svc.Back()
		return m, nil
	case "tab":
		m.slotFocused = !m.slotFocused
		if m.slotFocused {
			m.dateInput.Blur()
		} else {
			m.dateInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	case "enter":
		if m.slotFocused {
			_ = m.svc.SelectSlot(slots[m.slotCursor].ID)
		}
		if date, err := time.ParseInLocation(dateLayout, m.dateInput.Value(), time.Local); err == nil {
			m.svc.SetDate(date)
		}
		m.svc.Next()
		return m, nil
	}

	if m.slotFocused {
		switch msg.String() {
		case "up", "k":
			if m.slotCursor > 0 {
				m.slotCursor--
			}
		case "down", "j":
			if m.slotCursor < len(slots)-1 {
				m.slotCursor++
			}
		case " ":
			_ = m.svc.SelectSlot(slots[m.slotCursor].ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

// Step 3: personal details form.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.svc.Back()
		return m, nil
	case "tab", "down":
		return m.nextInput()
	case "shift+tab", "up":
		return m.prevInput()
	case "enter":
		m.svc.SetRecipient(models.Recipient{
			FirstName: m.formInputs[0].Value(),
			LastName:  m.formInputs[1].Value(),
			Email:     m.formInputs[2].Value(),
			Phone:     m.formInputs[3].Value(),
			Note:      m.formInputs[4].Value(),
		})
		m.svc.Next()
		return m, nil
	}

	var cmd tea.Cmd
	m.formInputs[m.focusedInput], cmd = m.formInputs[m.focusedInput].Update(msg)
	return m, cmd
}

// Step 4: design and voucher message.
func (m Model) handleDesignKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	designs := catalog.VoucherDesigns()
	switch msg.String() {
	case "esc":
		m.svc.Back()
		return m, nil
	case "tab":
		m.messageFocused = !m.messageFocused
		if m.messageFocused {
			m.messageInput.Focus()
			return m, textinput.Blink
		}
		m.messageInput.Blur()
		return m, nil
	case "enter":
		m.svc.SetMessage(m.messageInput.Value())
		m.svc.Next()
		return m, nil
	}

	if m.messageFocused {
		var cmd tea.Cmd
		m.messageInput, cmd = m.messageInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.designCursor > 0 {
			m.designCursor--
		}
	case "down", "j":
		if m.designCursor < len(designs)-1 {
			m.designCursor++
		}
	case " ":
		_ = m.svc.SelectDesign(designs[m.designCursor].ID)
	}
	return m, nil
}

// Step 5: preview and download.
func (m Model) handlePreviewKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "esc":
		if !m.rendering {
			m.svc.Back()
		}
	case "enter", "d":
		if m.rendering {
			return m, nil
		}
		m.rendering = true
		m.savedPath = ""
		m.renderErr = nil
		return m, m.downloadVoucher()
	}
	return m, nil
}

// downloadVoucher runs the render pipeline off the UI loop. The session
// stays on the preview step for its duration.
func (m Model) downloadVoucher() tea.Cmd {
	session := m.svc.Session()
	renderer := m.renderer
	dir := m.outputDir

	return func() tea.Msg {
		doc, err := voucher.BuildDocument(session)
		if err != nil {
			return voucherSavedMsg{err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		pdf, err := renderer.Render(ctx, doc)
		if err != nil {
			return voucherSavedMsg{err: err}
		}
		path, err := renderer.Save(pdf, dir)
		if err != nil {
			return voucherSavedMsg{err: err}
		}
		return voucherSavedMsg{path: path}
	}
}

func (m Model) nextInput() (tea.Model, tea.Cmd) {
	m.formInputs[m.focusedInput].Blur()
	m.focusedInput = (m.focusedInput + 1) % len(m.formInputs)
	m.formInputs[m.focusedInput].Focus()
	return m, textinput.Blink
}

func (m Model) prevInput() (tea.Model, tea.Cmd) {
	m.formInputs[m.focusedInput].Blur()
	m.focusedInput--
	if m.focusedInput < 0 {
		m.focusedInput = len(m.formInputs) - 1
	}
	m.formInputs[m.focusedInput].Focus()
	return m, textinput.Blink
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.dateInput, cmd = m.dateInput.Update(msg)
	cmds = append(cmds, cmd)
	for i := range m.formInputs {
		m.formInputs[i], cmd = m.formInputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	m.messageInput, cmd = m.messageInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
