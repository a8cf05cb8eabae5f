package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/rcamargo/pdiflow/internal/repository"
)

// Lookback windows for prompt context.
const (
	interactionWindowDays = 45
	interactionCap        = 5
	summaryWindowDays     = 90
)

// noInteractionFallback is embedded verbatim in the diagnostic prompt
// when the person has no recent assistant interactions.
const noInteractionFallback = "Não há nenhuma interação até o momento"

type contextService struct {
	persons      repository.PersonRepo
	interactions repository.InteractionRepo
	summaries    repository.SummaryRepo
	now          func() time.Time
}

// NewContextService creates a ContextService over the three read-only
// context sources.
func NewContextService(persons repository.PersonRepo, interactions repository.InteractionRepo, summaries repository.SummaryRepo) ContextService {
	return &contextService{
		persons:      persons,
		interactions: interactions,
		summaries:    summaries,
		now:          time.Now,
	}
}

func (s *contextService) PersonContext(ctx context.Context, email string) (domain.Person, error) {
	p, err := s.persons.GetByEmail(ctx, email)
	if err != nil {
		return domain.Person{}, err
	}
	return *p, nil
}

func (s *contextService) InteractionHistory(ctx context.Context, email string) (string, error) {
	since := s.now().AddDate(0, 0, -interactionWindowDays)
	entries, err := s.interactions.ListRecent(ctx, email, since, interactionCap)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return noInteractionFallback, nil
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("data: %s - resumo: %s", e.At.Format("2006-01-02"), e.Summary))
	}
	return strings.Join(parts, "; "), nil
}

func (s *contextService) WeeklySummaries(ctx context.Context, email string) (string, error) {
	since := s.now().AddDate(0, 0, -summaryWindowDays)
	entries, err := s.summaries.ListSince(ctx, email, since)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, e := range entries {
		if e.At == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("resumo da semana %s - %s", e.At.Format("02/01/2006"), strings.TrimSpace(e.Summary)))
	}
	return strings.Join(lines, "\n"), nil
}
