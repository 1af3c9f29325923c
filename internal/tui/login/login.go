// ABOUTME: Login screen for the admin console TUI
// ABOUTME: Huh form collecting admin credentials, resettable after failures

package login

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/styles"
)

// SubmitMsg is sent when the user confirms credentials
type SubmitMsg struct {
	Email    string
	Password string
}

// CancelledMsg is sent when the user backs out of the login screen
type CancelledMsg struct{}

// Login is the credential entry screen
type Login struct {
	form     *huh.Form
	email    string
	password string
	errText  string
	width    int
}

// New creates a fresh login screen
func New() *Login {
	l := &Login{}
	l.form = l.buildForm()
	return l
}

func (l *Login) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("admin@example.com").
				Value(&l.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.password),
		).Title("Admin sign-in").
			Description("Sign in with an admin account"),
	).WithTheme(huh.ThemeBase())
}

// Reset clears the password and shows an error from a failed attempt
func (l *Login) Reset(errText string) {
	l.password = ""
	l.errText = errText
	l.form = l.buildForm()
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update drives the embedded form and emits SubmitMsg on completion
func (l *Login) Update(msg tea.Msg) (*Login, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return l, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		email := strings.TrimSpace(l.email)
		password := l.password
		if email == "" || password == "" {
			l.Reset("Email and password are required")
			return l, l.form.Init()
		}
		return l, func() tea.Msg {
			return SubmitMsg{Email: email, Password: password}
		}
	}
	return l, cmd
}

// View renders the form with any error from the last attempt
func (l *Login) View() string {
	var sb strings.Builder
	if l.errText != "" {
		sb.WriteString(styles.StatusError.Render(l.errText))
		sb.WriteString("\n\n")
	}
	sb.WriteString(l.form.View())
	return sb.String()
}
