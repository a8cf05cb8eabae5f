package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config holds credentials for the Microsoft Graph mail client.
// LoginBaseURL and GraphBaseURL default to the public endpoints and are
// overridable for tests.
type Config struct {
	ClientID     string
	ClientSecret string
	TenantID     string
	Sender       string
	LoginBaseURL string
	GraphBaseURL string
}

const (
	defaultLoginBaseURL = "https://login.microsoftonline.com"
	defaultGraphBaseURL = "https://graph.microsoft.com"
)

// Client sends plain-text e-mail through Microsoft Graph using the
// client-credentials flow. A token is requested per send; the session
// flow sends at most one message, so caching buys nothing.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a mail Client. Missing base URLs fall back to the
// public Microsoft endpoints.
func NewClient(cfg Config) *Client {
	if cfg.LoginBaseURL == "" {
		cfg.LoginBaseURL = defaultLoginBaseURL
	}
	if cfg.GraphBaseURL == "" {
		cfg.GraphBaseURL = defaultGraphBaseURL
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether the client has full credentials. An
// unconfigured client skips sending rather than failing.
func (c *Client) Enabled() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != "" &&
		c.cfg.TenantID != "" && c.cfg.Sender != ""
}

// sendMailRequest is the Graph sendMail JSON payload.
type sendMailRequest struct {
	Message message `json:"message"`
}

type message struct {
	Subject      string      `json:"subject"`
	Body         messageBody `json:"body"`
	ToRecipients []recipient `json:"toRecipients"`
}

type messageBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type recipient struct {
	EmailAddress emailAddress `json:"emailAddress"`
}

type emailAddress struct {
	Address string `json:"address"`
}

// Send delivers a plain-text message to a single recipient. Graph
// answers 202 on success; 200 is also accepted.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	token, err := c.token(ctx)
	if err != nil {
		return fmt.Errorf("obtaining mail token: %w", err)
	}

	payload := sendMailRequest{
		Message: message{
			Subject:      subject,
			Body:         messageBody{ContentType: "Text", Content: body},
			ToRecipients: []recipient{{EmailAddress: emailAddress{Address: to}}},
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling mail payload: %w", err)
	}

	sendURL := fmt.Sprintf("%s/v1.0/users/%s/sendMail", c.cfg.GraphBaseURL, c.cfg.Sender)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("creating sendMail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendMail returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// token performs the client-credentials exchange for an access token.
func (c *Client) token(ctx context.Context) (string, error) {
	tokenURL := fmt.Sprintf("%s/%s/oauth2/v2.0/token", c.cfg.LoginBaseURL, c.cfg.TenantID)
	form := url.Values{
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"scope":         {"https://graph.microsoft.com/.default"},
		"grant_type":    {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(respBody, &tok); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access_token")
	}
	return tok.AccessToken, nil
}
