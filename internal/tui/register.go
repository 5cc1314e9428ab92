package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-learn-tracker/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var genders = []string{"", "male", "female", "other"}

// registerModel renders the account creation form. Text fields move with
// tab/shift+tab; gender cycles with left/right on its row.
type registerModel struct {
	inputs     []textinput.Model
	genderIdx  int
	focus      int
	submitting bool
	errMsg     string
}

const (
	regFieldName = iota
	regFieldEmail
	regFieldPassword
	regFieldConfirm
	regFieldPhone
	regFieldAge
	regFieldGender // virtual row after the text inputs
)

func newRegisterModel() registerModel {
	mk := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 40
		return in
	}

	nameInput := mk("name", 64)
	nameInput.Focus()
	emailInput := mk("email", 64)

	passwordInput := mk("password (6+ characters)", 256)
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	confirmInput := mk("repeat password", 256)
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	phoneInput := mk("+79991234567", 20)
	ageInput := mk("age", 3)

	return registerModel{
		inputs: []textinput.Model{nameInput, emailInput, passwordInput, confirmInput, phoneInput, ageInput},
	}
}

func (m appModel) updateRegister(msg tea.Msg) (appModel, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.register.submitting = false
		if result.err != nil {
			m.register.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.session = result.session
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.register.submitting = false
			m.register.errMsg = ""
			m.currentScreen = screenWelcome
			return m, nil
		case "tab", "down":
			m.register.focus = m.moveRegisterFocus(+1)
			return m, nil
		case "shift+tab", "up":
			m.register.focus = m.moveRegisterFocus(-1)
			return m, nil
		case "left":
			if m.register.focus == regFieldGender {
				m.register.genderIdx = (m.register.genderIdx - 1 + len(genders)) % len(genders)
				return m, nil
			}
		case "right":
			if m.register.focus == regFieldGender {
				m.register.genderIdx = (m.register.genderIdx + 1) % len(genders)
				return m, nil
			}
		case "enter":
			if m.register.submitting {
				return m, nil
			}

			input, err := m.register.collect()
			if err != "" {
				m.register.errMsg = err
				return m, nil
			}

			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdRegister(input)
		}
	}

	if m.register.focus < len(m.register.inputs) {
		var cmd tea.Cmd
		m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// moveRegisterFocus shifts focus across the six text inputs plus the gender
// row and returns the new index.
func (m *appModel) moveRegisterFocus(delta int) int {
	total := len(m.register.inputs) + 1
	if m.register.focus < len(m.register.inputs) {
		m.register.inputs[m.register.focus].Blur()
	}
	next := (m.register.focus + delta + total) % total
	if next < len(m.register.inputs) {
		m.register.inputs[next].Focus()
	}
	return next
}

// collect assembles a RegisterInput from the form, reporting the first
// conversion problem as a message for the error line.
func (r *registerModel) collect() (models.RegisterInput, string) {
	age := 0
	if raw := strings.TrimSpace(r.inputs[regFieldAge].Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return models.RegisterInput{}, "Age must be a number"
		}
		age = parsed
	}

	return models.RegisterInput{
		Name:            strings.TrimSpace(r.inputs[regFieldName].Value()),
		Email:           strings.TrimSpace(r.inputs[regFieldEmail].Value()),
		Password:        r.inputs[regFieldPassword].Value(),
		ConfirmPassword: r.inputs[regFieldConfirm].Value(),
		Phone:           strings.TrimSpace(r.inputs[regFieldPhone].Value()),
		Age:             age,
		Gender:          genders[r.genderIdx],
	}, ""
}

func (m appModel) viewRegister() string {
	labels := []string{"Name    ", "Email   ", "Password", "Confirm ", "Phone   ", "Age     "}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.register.inputs[i].View())
		b.WriteString("]\n")
	}

	gender := genders[m.register.genderIdx]
	if gender == "" {
		gender = "-"
	}
	marker := " "
	if m.register.focus == regFieldGender {
		marker = ">"
	}
	b.WriteString("Gender  ")
	b.WriteString(" │ ")
	b.WriteString(marker)
	b.WriteString(" ")
	b.WriteString(gender)
	b.WriteString("\n")

	if m.register.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.register.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.register.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ←/→: gender │ enter: submit")
}

func (m appModel) cmdRegister(input models.RegisterInput) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		session, err := auth.Register(ctx, input)
		return authDoneMsg{session: session, err: err}
	}
}
