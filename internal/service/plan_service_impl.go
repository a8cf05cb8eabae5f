package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/rcamargo/pdiflow/internal/genai"
	"github.com/rcamargo/pdiflow/internal/prompt"
)

// mailSubject and mailBodyTemplate shape the notification e-mail.
const mailSubject = "Seu PDI"

const mailBodyTemplate = `Olá,

Segue abaixo o resumo formatado do seu PDI:

%s

Segue também o seu PDI completo:
%s

Atenciosamente,
Equipe de Desenvolvimento`

type planService struct {
	gen     genai.Client
	answers AnswerService
	mailer  Mailer
	now     func() time.Time
}

// NewPlanService creates a PlanService. mailer may be an unconfigured
// client; finalization then records a skip instead of attempting a send.
func NewPlanService(gen genai.Client, answers AnswerService, mailer Mailer) PlanService {
	return &planService{gen: gen, answers: answers, mailer: mailer, now: time.Now}
}

func (s *planService) GenerateDiagnostic(ctx context.Context, personID string, in prompt.DiagnosticInput) (string, error) {
	return s.generate(ctx, genai.TaskDiagnostic, personID, prompt.Diagnostic(in))
}

func (s *planService) GeneratePlan(ctx context.Context, personID string, in prompt.PlanInput) (string, error) {
	return s.generate(ctx, genai.TaskPlan, personID, prompt.Plan(in))
}

func (s *planService) generate(ctx context.Context, task genai.TaskType, personID, promptText string) (string, error) {
	resp, err := s.gen.Generate(ctx, genai.GenerateRequest{
		Task:      task,
		Prompt:    promptText,
		SessionID: genai.SessionID(personID, s.now()),
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", ErrEmptyGeneration
	}
	return resp.Text, nil
}

// Finalize persists the edited plan, asks the generator for the strict
// key-value rendition, persists that, and attempts the notification
// e-mail. Only the first persistence step is fatal; everything after it
// degrades into warnings carried in the result.
func (s *planService) Finalize(ctx context.Context, email, personID, planText string) (*FinalizeResult, error) {
	if _, err := s.answers.Save(ctx, email, domain.InfoPDIOutput, planText); err != nil {
		return nil, fmt.Errorf("saving plan: %w", err)
	}

	resp, err := s.gen.Generate(ctx, genai.GenerateRequest{
		Task:      genai.TaskReformat,
		Prompt:    prompt.Reformat(planText),
		SessionID: genai.SessionID(personID, s.now()),
	})
	if err != nil {
		return nil, fmt.Errorf("reformatting plan: %w", err)
	}

	result := &FinalizeResult{Formatted: strings.TrimSpace(resp.Text)}
	if result.Formatted == "" {
		result.FormattedEmpty = true
	} else {
		if _, err := s.answers.Save(ctx, email, domain.InfoPDIFormatted, result.Formatted); err != nil {
			return nil, fmt.Errorf("saving formatted plan: %w", err)
		}
	}

	if s.mailer == nil || !s.mailer.Enabled() {
		result.MailSkipped = true
		return result, nil
	}

	body := fmt.Sprintf(mailBodyTemplate, result.Formatted, planText)
	if err := s.mailer.Send(ctx, email, mailSubject, body); err != nil {
		result.MailErr = err
		return result, nil
	}
	result.MailSent = true
	return result, nil
}
