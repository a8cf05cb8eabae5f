package service

import (
	"context"
	"time"

	"github.com/rcamargo/pdiflow/internal/genai"
)

// fakeGen returns canned text per task and records the requests it saw.
type fakeGen struct {
	byTask   map[genai.TaskType]string
	err      error
	requests []genai.GenerateRequest
}

func (f *fakeGen) Generate(_ context.Context, req genai.GenerateRequest) (*genai.GenerateResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateResponse{Text: f.byTask[req.Task]}, nil
}

// fakeMailer records sends and optionally fails them.
type fakeMailer struct {
	enabled bool
	err     error

	to, subject, body string
	sends             int
}

func (f *fakeMailer) Enabled() bool { return f.enabled }

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.sends++
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
