package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/huh"
	"github.com/rcamargo/pdiflow/internal/cli/formatter"
	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/rcamargo/pdiflow/internal/prompt"
	"github.com/rcamargo/pdiflow/internal/service"
	"github.com/rcamargo/pdiflow/internal/session"
)

// Messages produced by the stage commands.
type loginDoneMsg struct {
	ok    bool
	state session.State
	err   error
}

type answerResolvedMsg struct {
	info  domain.InfoType
	text  string
	saved bool
	when  time.Time
	err   error
}

type diagnosticReadyMsg struct {
	text     string
	warnings []string
	err      error
}

type diagnosticSavedMsg struct {
	text  string
	saved bool
	err   error
}

type competenciesSavedMsg struct {
	first  string
	second string
	err    error
}

type planReadyMsg struct {
	text string
	err  error
}

type finalizedMsg struct {
	result *service.FinalizeResult
	err    error
}

// advance derives the current stage from the snapshot and installs the
// matching form or background command.
func (m *sessionModel) advance() tea.Cmd {
	switch session.CurrentStage(m.state) {
	case session.StageLogin:
		m.setLoginForm()
		return m.form.Init()

	case session.StageQuestions:
		return m.advanceQuestions()

	case session.StageDiagnostic:
		if m.state.DiagnosticDraft == "" {
			return m.startBusy("Gerando diagnóstico com IA…", m.generateDiagnosticCmd())
		}
		m.setDiagnosticForm()
		return m.form.Init()

	case session.StageCompetencies:
		m.setCompetenciesForm()
		return m.form.Init()

	case session.StagePlan:
		if m.state.PlanDraft == "" {
			return m.startBusy("Gerando PDI com IA…", m.generatePlanCmd())
		}
		m.setPlanForm()
		return m.form.Init()

	case session.StageFinalize:
		return m.startBusy("Salvando e enviando o PDI…", m.finalizeCmd())

	default:
		m.setDoneViewport()
		return nil
	}
}

// advanceQuestions finds the next unresolved gating question, adopting
// fresh answers along the way without showing a form for them.
func (m *sessionModel) advanceQuestions() tea.Cmd {
	today := m.app.now()
	for {
		info, ok := m.state.NextQuestion()
		if !ok {
			return m.advance()
		}

		stored := m.state.Answers[info]
		freshness := domain.Classify(stored.Text, stored.RecordedAt, today)

		// Role tasks are re-confirmed every session with the stored
		// text preloaded for editing.
		if info == domain.InfoRoleTasks {
			m.setRoleTasksForm(stored.Text)
			return m.form.Init()
		}

		switch freshness {
		case domain.FreshnessFresh:
			m.state = m.state.WithResolved(info)
			continue
		case domain.FreshnessMissing:
			m.setMissingAnswerForm(info)
			return m.form.Init()
		default:
			m.setStaleAnswerForm(info, stored, domain.AgeDays(stored.RecordedAt, today))
			return m.form.Init()
		}
	}
}

func (m *sessionModel) startBusy(label string, cmd tea.Cmd) tea.Cmd {
	m.busy = true
	m.busyLabel = label
	return tea.Batch(m.spin.Tick, cmd)
}

// --- forms ---

func (m *sessionModel) setLoginForm() {
	m.fEmail = ""
	m.fSecret = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Digite seu e-mail").
				Value(&m.fEmail).
				Validate(validateNotBlank),
			huh.NewInput().
				Title("Digite seu ID (senha)").
				EchoMode(huh.EchoModePassword).
				Value(&m.fSecret).
				Validate(validateNotBlank),
		),
	).WithTheme(pdiflowHuhTheme()).WithShowHelp(false)
	m.formDone = func(m *sessionModel) tea.Cmd {
		return m.loginCmd(m.fEmail, m.fSecret)
	}
}

func (m *sessionModel) setMissingAnswerForm(info domain.InfoType) {
	m.fText = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(questionLabels[info]).
				Value(&m.fText),
		),
	).WithTheme(pdiflowHuhTheme()).WithShowHelp(false)
	m.formDone = func(m *sessionModel) tea.Cmd {
		return m.saveAnswerCmd(info, m.fText)
	}
}

func (m *sessionModel) setStaleAnswerForm(info domain.InfoType, stored domain.Answer, ageDays *int) {
	m.fKeep = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Resposta anterior").
				Description(stored.Text),
			huh.NewInput().
				Title(staleQuestionTitle(questionLabels[info], ageDays)).
				Value(&m.fKeep),
		),
	).WithTheme(pdiflowHuhTheme()).WithShowHelp(false)
	m.formDone = func(m *sessionModel) tea.Cmd {
		if domain.IsStillValidReply(m.fKeep) {
			info := info
			return func() tea.Msg {
				return answerResolvedMsg{info: info}
			}
		}
		return m.saveAnswerCmd(info, m.fKeep)
	}
}

func (m *sessionModel) setRoleTasksForm(stored string) {
	m.fText = stored
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(questionLabels[domain.InfoRoleTasks]).
				Value(&m.fText),
		),
	).WithTheme(pdiflowHuhTheme()).WithShowHelp(false)
	m.formDone = func(m *sessionModel) tea.Cmd {
		return m.saveAnswerCmd(domain.InfoRoleTasks, m.fText)
	}
}

func (m *sessionModel) setDiagnosticForm() {
	m.fDiag = m.state.DiagnosticDraft
	m.fSave = true
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Diagnóstico do PDI (edite antes de salvar)").
				Lines(12).
				Value(&m.fDiag),
			huh.NewConfirm().
				Title("Salvar diagnóstico final?").
				Affirmative("Salvar").
				Negative("Gerar novamente").
				Value(&m.fSave),
		),
	).WithTheme(pdiflowHuhTheme()).WithShowHelp(false)
	m.formDone = func(m *sessionModel) tea.Cmd {
		if !m.fSave {
			m.state = m.state.WithDiagnosticDraft("")
			return m.advance()
		}
		return m.saveDiagnosticCmd(m.fDiag)
	}
}

func (m *sessionModel) setCompetenciesForm() {
	m.fComp1 = m.state.Competency1
	m.fComp2 = m.state.Competency2
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Competência 1 (obrigatória)").
				Value(&m.fComp1).
				Validate(validateNotBlank),
			huh.NewInput().
				Title("Competência 2 (opcional)").
				Value(&m.fComp2),
		),
	).WithTheme(pdiflowHuhTheme()).WithShowHelp(false)
	m.formDone = func(m *sessionModel) tea.Cmd {
		return m.saveCompetenciesCmd(m.fComp1, m.fComp2)
	}
}

func (m *sessionModel) setPlanForm() {
	m.fPlan = m.state.PlanDraft
	m.fSave = true
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Edite seu PDI:").
				Lines(16).
				Value(&m.fPlan),
			huh.NewConfirm().
				Title("Salvar PDI final?").
				Affirmative("Salvar").
				Negative("Gerar novamente").
				Value(&m.fSave),
		),
	).WithTheme(pdiflowHuhTheme()).WithShowHelp(false)
	m.formDone = func(m *sessionModel) tea.Cmd {
		if !m.fSave {
			m.state = m.state.WithPlanDraft("")
			return m.advance()
		}
		m.state = m.state.WithPlanDraft(m.fPlan).WithPlanAccepted()
		return m.advance()
	}
}

// setRetryForm offers one more attempt after a failed generation step.
func (m *sessionModel) setRetryForm(title string) {
	m.fRetry = true
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Tentar novamente").
				Negative("Sair").
				Value(&m.fRetry),
		),
	).WithTheme(pdiflowHuhTheme()).WithShowHelp(false)
	m.formDone = func(m *sessionModel) tea.Cmd {
		if !m.fRetry {
			m.quitting = true
			return tea.Quit
		}
		return m.advance()
	}
}

func (m *sessionModel) setDoneViewport() {
	vp := viewport.New(m.viewportWidth(), m.viewportHeight())
	vp.SetContent(m.doneContent())
	m.vp = vp
	m.vpReady = true
}

func (m *sessionModel) doneContent() string {
	var b strings.Builder

	b.WriteString(formatter.Success("PDI final e versão formatada salvos com sucesso!"))
	b.WriteString("\n\n")

	if m.app.TrackerURL != "" {
		b.WriteString(formatter.Warn("Registre seu PDI no sistema de acompanhamento: " + m.app.TrackerURL))
		b.WriteString("\n\n")
	}

	if m.state.FormattedPlan != "" {
		b.WriteString(formatter.Header("PDI Formatado"))
		b.WriteString("\n")
		b.WriteString(m.state.FormattedPlan)
		b.WriteString("\n\n")
	}

	b.WriteString(formatter.Header("PDI Completo"))
	b.WriteString("\n")
	b.WriteString(m.state.PlanDraft)
	b.WriteString("\n")

	return b.String()
}

func validateNotBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("preencha este campo")
	}
	return nil
}

// --- commands ---

func (m *sessionModel) loginCmd(email, secret string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		ok, err := app.Auth.Authenticate(ctx, email, secret)
		if err != nil || !ok {
			return loginDoneMsg{ok: ok, err: err}
		}

		email = strings.TrimSpace(email)
		latest, err := app.Answers.Latest(ctx, email)
		if err != nil {
			return loginDoneMsg{ok: true, err: err}
		}
		return loginDoneMsg{ok: true, state: session.NewState(email, strings.TrimSpace(secret), latest)}
	}
}

func (m *sessionModel) saveAnswerCmd(info domain.InfoType, text string) tea.Cmd {
	app, email := m.app, m.state.Email
	when := m.app.now().UTC()
	return func() tea.Msg {
		saved, err := app.Answers.Save(context.Background(), email, info, text)
		return answerResolvedMsg{
			info:  info,
			text:  strings.TrimSpace(text),
			saved: saved,
			when:  when,
			err:   err,
		}
	}
}

func (m *sessionModel) generateDiagnosticCmd() tea.Cmd {
	app, st := m.app, m.state
	return func() tea.Msg {
		ctx := context.Background()
		var warnings []string

		person, err := app.Contexts.PersonContext(ctx, st.Email)
		if err != nil {
			warnings = append(warnings, formatter.Warn("Falha ao buscar resumo da pessoa: "+err.Error()))
		}
		history, err := app.Contexts.InteractionHistory(ctx, st.Email)
		if err != nil {
			warnings = append(warnings, formatter.Warn("Falha ao buscar histórico de interações: "+err.Error()))
		}
		weekly, err := app.Contexts.WeeklySummaries(ctx, st.Email)
		if err != nil {
			warnings = append(warnings, formatter.Warn("Falha ao buscar resumos semanais: "+err.Error()))
		}

		text, err := app.Plans.GenerateDiagnostic(ctx, st.PersonID, prompt.DiagnosticInput{
			PersonSummary:      person.Summary,
			Feedback:           st.Answers[domain.InfoFeedbackOutput].Text,
			Strengths:          st.Answers[domain.InfoStrengths].Text,
			DevelopmentPoints:  st.Answers[domain.InfoDevelopmentPoints].Text,
			RoleTasks:          st.Answers[domain.InfoRoleTasks].Text,
			CareerObjectives:   st.Answers[domain.InfoCareerObjectives].Text,
			InteractionHistory: history,
			WeeklySummaries:    weekly,
		})
		return diagnosticReadyMsg{text: text, warnings: warnings, err: err}
	}
}

func (m *sessionModel) saveDiagnosticCmd(text string) tea.Cmd {
	app, email := m.app, m.state.Email
	return func() tea.Msg {
		saved, err := app.Answers.Save(context.Background(), email, domain.InfoDiagnostic, text)
		return diagnosticSavedMsg{text: strings.TrimSpace(text), saved: saved, err: err}
	}
}

func (m *sessionModel) saveCompetenciesCmd(first, second string) tea.Cmd {
	app, email := m.app, m.state.Email
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := app.Answers.Save(ctx, email, domain.InfoCompetency1, first); err != nil {
			return competenciesSavedMsg{err: err}
		}
		if strings.TrimSpace(second) != "" {
			if _, err := app.Answers.Save(ctx, email, domain.InfoCompetency2, second); err != nil {
				return competenciesSavedMsg{err: err}
			}
		}
		return competenciesSavedMsg{first: strings.TrimSpace(first), second: strings.TrimSpace(second)}
	}
}

func (m *sessionModel) generatePlanCmd() tea.Cmd {
	app, st := m.app, m.state
	return func() tea.Msg {
		ctx := context.Background()
		weekly, _ := app.Contexts.WeeklySummaries(ctx, st.Email)

		text, err := app.Plans.GeneratePlan(ctx, st.PersonID, prompt.PlanInput{
			Diagnostic:      st.DiagnosticDraft,
			RoleTasks:       st.Answers[domain.InfoRoleTasks].Text,
			WeeklySummaries: weekly,
			Competencies:    st.Competencies(),
		})
		return planReadyMsg{text: text, err: err}
	}
}

func (m *sessionModel) finalizeCmd() tea.Cmd {
	app, st := m.app, m.state
	return func() tea.Msg {
		result, err := app.Plans.Finalize(context.Background(), st.Email, st.PersonID, st.PlanDraft)
		return finalizedMsg{result: result, err: err}
	}
}

// --- handlers ---

func (m *sessionModel) handleLogin(msg loginDoneMsg) tea.Cmd {
	m.notices = nil
	if msg.err != nil {
		m.notices = append(m.notices, formatter.Fail("Falha no acesso: "+msg.err.Error()))
		m.setLoginForm()
		return m.form.Init()
	}
	if !msg.ok {
		m.notices = append(m.notices, formatter.Fail(loginFailedNotice))
		m.setLoginForm()
		return m.form.Init()
	}
	m.state = msg.state
	return m.advance()
}

func (m *sessionModel) handleAnswerResolved(msg answerResolvedMsg) tea.Cmd {
	m.notices = nil
	if msg.err != nil {
		m.notices = append(m.notices, formatter.Fail(fmt.Sprintf("Falha ao salvar %s: %v", msg.info, msg.err)))
		return m.advance()
	}
	if msg.saved {
		when := msg.when
		m.state = m.state.WithAnswer(msg.info, domain.Answer{Text: msg.text, RecordedAt: &when})
	} else {
		m.state = m.state.WithResolved(msg.info)
	}
	return m.advance()
}

func (m *sessionModel) handleDiagnosticReady(msg diagnosticReadyMsg) tea.Cmd {
	m.busy = false
	m.notices = msg.warnings
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrEmptyGeneration) {
			m.notices = append(m.notices, formatter.Warn(emptyGenNotice))
		} else {
			m.notices = append(m.notices, formatter.Fail("Falha ao gerar diagnóstico: "+msg.err.Error()))
		}
		m.setRetryForm("Gerar o diagnóstico novamente?")
		return m.form.Init()
	}
	m.state = m.state.WithDiagnosticDraft(msg.text)
	return m.advance()
}

func (m *sessionModel) handleDiagnosticSaved(msg diagnosticSavedMsg) tea.Cmd {
	m.notices = nil
	if msg.err != nil {
		m.notices = append(m.notices, formatter.Fail("Falha ao salvar diagnóstico: "+msg.err.Error()))
		return m.advance()
	}
	if !msg.saved {
		m.notices = append(m.notices, formatter.Warn("O diagnóstico está vazio. Edite o texto antes de salvar."))
		return m.advance()
	}
	m.state = m.state.WithDiagnosticSaved(msg.text)
	return m.advance()
}

func (m *sessionModel) handleCompetenciesSaved(msg competenciesSavedMsg) tea.Cmd {
	m.notices = nil
	if msg.err != nil {
		m.notices = append(m.notices, formatter.Fail("Falha ao salvar competências: "+msg.err.Error()))
		return m.advance()
	}
	m.state = m.state.WithCompetencies(msg.first, msg.second)
	return m.advance()
}

func (m *sessionModel) handlePlanReady(msg planReadyMsg) tea.Cmd {
	m.busy = false
	m.notices = nil
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrEmptyGeneration) {
			m.notices = append(m.notices, formatter.Warn(emptyGenNotice))
		} else {
			m.notices = append(m.notices, formatter.Fail("Falha ao gerar PDI: "+msg.err.Error()))
		}
		m.setRetryForm("Gerar o PDI novamente?")
		return m.form.Init()
	}
	m.state = m.state.WithPlanDraft(msg.text)
	return m.advance()
}

func (m *sessionModel) handleFinalized(msg finalizedMsg) tea.Cmd {
	m.busy = false
	m.notices = nil
	if msg.err != nil {
		m.notices = append(m.notices, formatter.Fail("Falha ao salvar o PDI: "+msg.err.Error()))
		m.setRetryForm("Tentar salvar o PDI novamente?")
		return m.form.Init()
	}

	result := msg.result
	if result.FormattedEmpty {
		m.notices = append(m.notices, formatter.Warn("A versão formatada veio vazia e não foi salva."))
	}
	switch {
	case result.MailSent:
		m.notices = append(m.notices, formatter.Success("📧 PDI enviado com sucesso para "+m.state.Email))
	case result.MailSkipped:
		m.notices = append(m.notices, formatter.Dim("Envio de e-mail não configurado."))
	case result.MailErr != nil:
		m.notices = append(m.notices, formatter.Warn("Falha ao enviar e-mail: "+result.MailErr.Error()))
	}

	m.state = m.state.WithFinalized(result.Formatted, result.MailSent)
	return m.advance()
}
