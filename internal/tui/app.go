// ABOUTME: Root bubbletea model for the admin console TUI
// ABOUTME: Routes between login, menu, list, and form screens; 401s force re-login

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/mylikerahul/acasa-adminctl/internal/session"
	"github.com/mylikerahul/acasa-adminctl/internal/token"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/formview"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/listview"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/login"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/menu"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/resources"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/styles"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenLogin
	ScreenMenu
	ScreenList
	ScreenForm
)

// authCheckedMsg carries the startup session-guard verdict
type authCheckedMsg struct {
	result session.Result
}

// loginResultMsg carries the outcome of a login attempt
type loginResultMsg struct {
	name string
	err  error
}

// loggedOutMsg is sent after an explicit logout completes
type loggedOutMsg struct{}

// sessionExpiredMsg is sent when any request came back 401
type sessionExpiredMsg struct{}

// App is the root model for the TUI
type App struct {
	client *client.Client
	store  *token.Store
	guard  *session.Guard
	specs  []resources.Spec

	screen   Screen
	width    int
	height   int
	identity string

	loginScreen *login.Login
	menuScreen  *menu.Menu
	listScreen  *listview.Model
	formScreen  *formview.Model

	expired chan struct{}
}

// New creates the TUI application
func New(apiClient *client.Client, store *token.Store, guard *session.Guard) *App {
	a := &App{
		client:  apiClient,
		store:   store,
		guard:   guard,
		specs:   resources.Catalog(apiClient),
		screen:  ScreenLoading,
		expired: make(chan struct{}, 1),
	}

	// Any 401 anywhere drops the whole app back to the login screen
	apiClient.SetUnauthorizedHook(func() {
		select {
		case a.expired <- struct{}{}:
		default:
		}
	})

	a.menuScreen = menu.New(a.menuItems())
	return a
}

func (a *App) menuItems() []menu.Item {
	items := make([]menu.Item, 0, len(a.specs)+2)
	for _, spec := range a.specs {
		items = append(items, menu.Item{Label: spec.Title})
	}
	items = append(items,
		menu.Item{Label: "Logout"},
		menu.Item{Label: "Quit"},
	)
	return items
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.checkAuth(), a.listenExpired())
}

// checkAuth runs the session guard off the tea loop
func (a *App) checkAuth() tea.Cmd {
	return func() tea.Msg {
		return authCheckedMsg{result: a.guard.Check(context.Background())}
	}
}

// listenExpired waits for the 401 signal and re-arms after each one
func (a *App) listenExpired() tea.Cmd {
	return func() tea.Msg {
		<-a.expired
		return sessionExpiredMsg{}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.forward(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.routeKey(msg)

	case authCheckedMsg:
		if msg.result.State == session.StateAuthenticated {
			a.identity = msg.result.Claims.Name
			a.screen = ScreenMenu
			return a, nil
		}
		return a, a.toLogin(loginNotice(msg.result.Reason))

	case sessionExpiredMsg:
		a.teardownList()
		a.formScreen = nil
		cmd := a.toLogin("Session expired, sign in again")
		return a, tea.Batch(cmd, a.listenExpired())

	case login.SubmitMsg:
		return a, a.doLogin(msg.Email, msg.Password)

	case login.CancelledMsg:
		return a, tea.Quit

	case loginResultMsg:
		if msg.err != nil {
			if a.loginScreen != nil {
				a.loginScreen.Reset(msg.err.Error())
				return a, a.loginScreen.Init()
			}
			return a, nil
		}
		a.identity = msg.name
		a.loginScreen = nil
		a.screen = ScreenMenu
		return a, nil

	case loggedOutMsg:
		return a, a.toLogin("Logged out")

	case menu.SelectedMsg:
		return a.handleMenuSelect(msg.Index)

	case menu.CancelledMsg:
		return a, tea.Quit

	case listview.BackMsg:
		a.teardownList()
		a.screen = ScreenMenu
		return a, nil

	case listview.CreateMsg:
		return a, a.openForm(msg.Resource, nil)

	case listview.EditMsg:
		row := msg.Row
		return a, a.openForm(msg.Resource, &row)

	case formview.SavedMsg:
		a.formScreen = nil
		a.screen = ScreenList
		if a.listScreen != nil {
			return a, a.listScreen.Init()
		}
		return a, nil

	case formview.CancelledMsg:
		a.formScreen = nil
		a.screen = ScreenList
		return a, nil
	}

	return a, a.forward(msg)
}

// routeKey sends a key to the active screen only
func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	switch a.screen {
	case ScreenLogin:
		if a.loginScreen != nil {
			var cmd tea.Cmd
			a.loginScreen, cmd = a.loginScreen.Update(msg)
			return cmd
		}
	case ScreenMenu:
		var cmd tea.Cmd
		a.menuScreen, cmd = a.menuScreen.Update(msg)
		return cmd
	case ScreenList:
		if a.listScreen != nil {
			var cmd tea.Cmd
			a.listScreen, cmd = a.listScreen.Update(msg)
			return cmd
		}
	case ScreenForm:
		if a.formScreen != nil {
			var cmd tea.Cmd
			a.formScreen, cmd = a.formScreen.Update(msg)
			return cmd
		}
	}
	return nil
}

// forward delivers async and unknown messages to the screens that may be
// waiting on them. The list screen stays alive underneath an open form,
// so it always receives its controller notifications.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if a.listScreen != nil {
		var cmd tea.Cmd
		a.listScreen, cmd = a.listScreen.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.screen == ScreenForm && a.formScreen != nil {
		var cmd tea.Cmd
		a.formScreen, cmd = a.formScreen.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.screen == ScreenLogin && a.loginScreen != nil {
		var cmd tea.Cmd
		a.loginScreen, cmd = a.loginScreen.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (a *App) handleMenuSelect(index int) (tea.Model, tea.Cmd) {
	switch {
	case index < len(a.specs):
		a.listScreen = listview.New(a.specs[index])
		a.screen = ScreenList
		return a, a.listScreen.Init()

	case index == len(a.specs): // Logout
		return a, a.doLogout()

	default: // Quit
		return a, tea.Quit
	}
}

func (a *App) teardownList() {
	if a.listScreen != nil {
		a.listScreen.Close()
		a.listScreen = nil
	}
}

func (a *App) toLogin(notice string) tea.Cmd {
	a.loginScreen = login.New()
	if notice != "" {
		a.loginScreen.Reset(notice)
	}
	a.screen = ScreenLogin
	return a.loginScreen.Init()
}

// doLogin exchanges credentials for a token and persists it when the
// account is an admin
func (a *App) doLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		tok, err := a.client.Login(context.Background(), email, password)
		if err != nil {
			return loginResultMsg{err: err}
		}

		claims, err := token.DecodeClaims(tok)
		if err != nil {
			return loginResultMsg{err: fmt.Errorf("backend returned an unreadable token")}
		}
		if claims.UserType != "admin" {
			return loginResultMsg{err: fmt.Errorf("this account is not an admin")}
		}
		if err := a.store.SaveAdminToken(tok); err != nil {
			return loginResultMsg{err: fmt.Errorf("failed to save credentials: %w", err)}
		}

		name := claims.Name
		if name == "" {
			name = claims.Email
		}
		return loginResultMsg{name: name}
	}
}

func (a *App) doLogout() tea.Cmd {
	a.teardownList()
	a.formScreen = nil
	return func() tea.Msg {
		_ = a.client.Logout(context.Background())
		a.store.LogoutAll()
		return loggedOutMsg{}
	}
}

// loginNotice maps a guard denial to the banner on the login screen
func loginNotice(reason session.Reason) string {
	switch reason {
	case session.ReasonNoToken:
		return ""
	case session.ReasonExpired:
		return "Session expired, sign in again"
	case session.ReasonWrongSessionType, session.ReasonNotAdmin:
		return "Admin account required"
	case session.ReasonRejected:
		return "Session rejected by the backend, sign in again"
	default:
		return ""
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string
	switch a.screen {
	case ScreenLoading:
		content = styles.Subtitle.Render("Checking session…")
	case ScreenLogin:
		if a.loginScreen != nil {
			content = a.loginScreen.View()
		}
	case ScreenMenu:
		content = a.menuScreen.View()
	case ScreenList:
		if a.listScreen != nil {
			content = a.listScreen.View()
		}
	case ScreenForm:
		if a.formScreen != nil {
			content = a.formScreen.View()
		}
	}

	return a.renderHeader() + "\n" + content
}

// renderHeader is the one-line banner with branding and identity
func (a *App) renderHeader() string {
	title := styles.Title.Render("Acasa Admin")
	if a.identity == "" {
		return title
	}
	who := styles.Subtitle.Render(a.identity)
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(who)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + who
}

// openForm opens the create/edit screen for a section
func (a *App) openForm(resource string, row *resources.Row) tea.Cmd {
	for _, spec := range a.specs {
		if spec.Name == resource {
			a.formScreen = formview.New(spec, row)
			a.screen = ScreenForm
			return a.formScreen.Init()
		}
	}
	return nil
}

// Run starts the TUI
func Run(apiClient *client.Client, store *token.Store, guard *session.Guard) error {
	app := New(apiClient, store, guard)

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
