package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/rcamargo/pdiflow/internal/repository"
)

type answerService struct {
	answers repository.AnswerRepo
	now     func() time.Time
}

// NewAnswerService creates an AnswerService over the answer log.
func NewAnswerService(answers repository.AnswerRepo) AnswerService {
	return &answerService{answers: answers, now: time.Now}
}

func (s *answerService) Save(ctx context.Context, email string, info domain.InfoType, text string) (bool, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false, nil
	}
	at := s.now().UTC()
	err := s.answers.Append(ctx, &domain.AnswerRecord{
		ID:          uuid.New().String(),
		Email:       email,
		Info:        info,
		Description: trimmed,
		RecordedAt:  &at,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *answerService) Latest(ctx context.Context, email string) (map[domain.InfoType]domain.Answer, error) {
	return s.answers.LatestByEmail(ctx, email)
}
