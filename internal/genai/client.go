package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for one generation call.
type GenerateRequest struct {
	Task      TaskType
	Prompt    string
	SessionID string
}

// GenerateResponse holds the result of a generation call. Text may be
// empty when the service answered without usable content; callers must
// treat that as "no content produced" and warn instead of proceeding.
type GenerateResponse struct {
	Text      string
	LatencyMs int64
}

// Client provides access to the external text-generation service.
type Client interface {
	// Generate sends a prompt and returns the extracted answer text.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// predictionRequest is the JSON body sent to the prediction endpoint.
type predictionRequest struct {
	Question       string         `json:"question"`
	OverrideConfig overrideConfig `json:"overrideConfig"`
}

type overrideConfig struct {
	SessionID string `json:"sessionId"`
}

// predictionResponse is the union of answer shapes the service has been
// observed to return. ExtractText probes the known fields in order; an
// unrecognized shape yields an empty string rather than an error.
type predictionResponse struct {
	Text   string `json:"text"`
	Answer string `json:"answer"`
	Output string `json:"output"`
	Data   []struct {
		Text string `json:"text"`
	} `json:"data"`
}

// ExtractText returns the first populated answer field, or "".
func (r predictionResponse) ExtractText() string {
	switch {
	case r.Text != "":
		return r.Text
	case r.Answer != "":
		return r.Answer
	case r.Output != "":
		return r.Output
	case len(r.Data) > 0:
		return r.Data[0].Text
	default:
		return ""
	}
}

// httpClient implements Client against a prediction-style HTTP endpoint.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the configured endpoint.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	if ms := c.cfg.TaskTimeout(req.Task); ms > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(ms)*time.Millisecond)
		defer cancel()
	}

	text, err := c.doRequest(ctx, predictionRequest{
		Question:       req.Prompt,
		OverrideConfig: overrideConfig{SessionID: req.SessionID},
	})

	latency := time.Since(start).Milliseconds()
	if err != nil {
		c.observer.OnCallComplete(CallEvent{
			Task:      req.Task,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(ctx, err),
		})
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		if isConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, err
	}

	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		LatencyMs: latency,
		Success:   true,
		Empty:     text == "",
	})
	return &GenerateResponse{Text: text, LatencyMs: latency}, nil
}

func (c *httpClient) doRequest(ctx context.Context, body predictionRequest) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return "", fmt.Errorf("generation endpoint returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp predictionResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	return resp.ExtractText(), nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(ctx context.Context, err error) string {
	switch {
	case ctx.Err() != nil:
		return "TIMEOUT"
	case isConnectionError(err):
		return "UNAVAILABLE"
	default:
		return "HTTP_ERROR"
	}
}
