package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rcamargo/pdiflow/internal/cli/formatter"
	"github.com/rcamargo/pdiflow/internal/session"
)

// sessionModel is the bubbletea Model for the guided development-plan
// session. The active stage is always derived from the state snapshot;
// the model only owns the transient form fields and notices.
type sessionModel struct {
	app   *App
	state session.State

	form     *huh.Form
	formDone func(m *sessionModel) tea.Cmd

	spin      spinner.Model
	busy      bool
	busyLabel string

	vp      viewport.Model
	vpReady bool

	notices []string
	width   int
	height  int

	quitting bool

	// form-bound fields
	fEmail  string
	fSecret string
	fText   string
	fKeep   string
	fDiag   string
	fSave   bool
	fRetry  bool
	fComp1  string
	fComp2  string
	fPlan   string
}

func newSessionModel(app *App) *sessionModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(formatter.ColorPurple)),
	)
	m := &sessionModel{app: app, spin: sp}
	m.setLoginForm()
	return m
}

func (m *sessionModel) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

func (m *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.vpReady {
			m.vp.Width = m.viewportWidth()
			m.vp.Height = m.viewportHeight()
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.quitting = true
			return m, tea.Quit
		}
		if m.vpReady {
			if msg.String() == "q" {
				m.quitting = true
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case loginDoneMsg:
		return m, m.handleLogin(msg)
	case answerResolvedMsg:
		return m, m.handleAnswerResolved(msg)
	case diagnosticReadyMsg:
		return m, m.handleDiagnosticReady(msg)
	case diagnosticSavedMsg:
		return m, m.handleDiagnosticSaved(msg)
	case competenciesSavedMsg:
		return m, m.handleCompetenciesSaved(msg)
	case planReadyMsg:
		return m, m.handlePlanReady(msg)
	case finalizedMsg:
		return m, m.handleFinalized(msg)
	}

	if m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		if m.form.State == huh.StateCompleted {
			done := m.formDone
			m.form = nil
			m.formDone = nil
			if done != nil {
				return m, done(m)
			}
		}
		return m, cmd
	}

	return m, nil
}

func (m *sessionModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("PDI"))
	b.WriteString("\n")
	if m.state.Email != "" {
		b.WriteString(formatter.Dim("Pessoa: " + m.state.Email))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, n := range m.notices {
		b.WriteString(n)
		b.WriteString("\n")
	}

	if m.busy {
		fmt.Fprintf(&b, "%s %s\n", m.spin.View(), formatter.Dim(m.busyLabel))
		return b.String()
	}

	if m.vpReady {
		b.WriteString(m.vp.View())
		b.WriteString("\n")
		b.WriteString(formatter.Dim("↑/↓ rolar · q sair"))
		return b.String()
	}

	if m.form != nil {
		b.WriteString(m.form.View())
	}
	return b.String()
}

func (m *sessionModel) viewportWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}

func (m *sessionModel) viewportHeight() int {
	h := m.height - 8
	if h < 10 {
		h = 10
	}
	return h
}

// RunSession starts the interactive wizard and blocks until it exits.
func RunSession(app *App) error {
	_, err := tea.NewProgram(newSessionModel(app)).Run()
	return err
}
