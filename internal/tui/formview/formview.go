// ABOUTME: Create/edit form screen for one admin section
// ABOUTME: Huh inputs over the form controller's validation and submit lifecycle

package formview

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mylikerahul/acasa-adminctl/internal/formctl"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/resources"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/styles"
)

// SavedMsg is sent after a successful create or update
type SavedMsg struct {
	Resource string
}

// CancelledMsg is sent when the user abandons the form
type CancelledMsg struct{}

// submitDoneMsg carries the submission outcome back onto the tea loop
type submitDoneMsg struct {
	err error
}

// Model is the form screen
type Model struct {
	spec   resources.Spec
	id     string // empty for create
	ctrl   *formctl.Form
	form   *huh.Form
	values map[string]*string
}

// New creates a form screen. A non-nil row pre-fills the inputs for edit.
func New(spec resources.Spec, row *resources.Row) *Model {
	m := &Model{
		spec:   spec,
		ctrl:   formctl.New(spec.Sections(), spec.RequiredFields()),
		values: make(map[string]*string, len(spec.Fields)),
	}

	for _, f := range spec.Fields {
		v := new(string)
		if row != nil {
			*v = row.Cells[f.Name]
		}
		m.values[f.Name] = v
	}
	if row != nil {
		m.id = row.ID
	}

	m.form = m.buildForm()
	return m
}

// buildForm lays the spec's fields out as one huh group per section
func (m *Model) buildForm() *huh.Form {
	var groups []*huh.Group
	for _, section := range m.spec.Sections() {
		var fields []huh.Field
		for _, name := range section.Fields {
			field := m.fieldByName(name)
			title := field.Title
			if field.Required {
				title += " *"
			}
			fields = append(fields, huh.NewInput().
				Title(title).
				Value(m.values[name]))
		}
		groups = append(groups, huh.NewGroup(fields...).Title(section.Name))
	}
	return huh.NewForm(groups...).WithTheme(huh.ThemeBase())
}

func (m *Model) fieldByName(name string) resources.Field {
	for _, f := range m.spec.Fields {
		if f.Name == name {
			return f
		}
	}
	return resources.Field{Name: name, Title: name}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update drives the embedded form and submits on completion
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	case submitDoneMsg:
		if msg.err != nil {
			// Keep the values, rebuild the input form for another attempt
			m.form = m.buildForm()
			return m, m.form.Init()
		}
		resource := m.spec.Name
		return m, func() tea.Msg { return SavedMsg{Resource: resource} }
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && m.ctrl.State() != formctl.StateSubmitting {
		for name, v := range m.values {
			m.ctrl.SetField(name, *v)
		}
		return m, m.submit()
	}
	return m, cmd
}

// submit runs the controller lifecycle around the backend call
func (m *Model) submit() tea.Cmd {
	id := m.id
	save := m.spec.Save
	ctrl := m.ctrl
	return func() tea.Msg {
		err := ctrl.Submit(context.Background(), func(ctx context.Context) error {
			return save(ctx, id, ctrl.Fields())
		})
		return submitDoneMsg{err: err}
	}
}

// View renders the form plus validation and submit state
func (m *Model) View() string {
	var sb strings.Builder

	verb := "New"
	if m.id != "" {
		verb = "Edit"
	}
	sb.WriteString(styles.Title.Render(verb + " " + strings.TrimSuffix(m.spec.Title, "s")))
	sb.WriteString("\n")

	switch m.ctrl.State() {
	case formctl.StateSubmitting:
		sb.WriteString(styles.Subtitle.Render("Saving…"))
		sb.WriteString("\n")
	case formctl.StateFailed:
		if section := m.ctrl.ActiveSection(); m.firstFieldError() != "" {
			sb.WriteString(styles.StatusError.Render(m.firstFieldError() + " (" + section + ")"))
		} else {
			sb.WriteString(styles.StatusError.Render("Save failed, check the values and try again"))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.form.View())
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("enter next · esc cancel"))
	return sb.String()
}

// firstFieldError returns the first validation message in field order
func (m *Model) firstFieldError() string {
	for _, f := range m.spec.Fields {
		if msg := m.ctrl.FieldError(f.Name); msg != "" {
			return f.Title + ": " + msg
		}
	}
	return ""
}
