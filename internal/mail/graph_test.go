package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, tokenStatus, sendStatus int, sent *sendMailRequest) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/tenant-1/oauth2/v2.0/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "https://graph.microsoft.com/.default", r.PostForm.Get("scope"))

		w.WriteHeader(tokenStatus)
		if tokenStatus == http.StatusOK {
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
		}
	})
	mux.HandleFunc("/v1.0/users/rh@example.com/sendMail", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		if sent != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(sent))
		}
		w.WriteHeader(sendStatus)
		if sendStatus >= 400 {
			w.Write([]byte(`{"error": "mailbox unavailable"}`))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		TenantID:     "tenant-1",
		Sender:       "rh@example.com",
		LoginBaseURL: srv.URL,
		GraphBaseURL: srv.URL,
	})
}

func TestSend_TokenThenSendMail(t *testing.T) {
	var sent sendMailRequest
	client := newTestClient(t, http.StatusOK, http.StatusAccepted, &sent)

	err := client.Send(context.Background(), "ana@example.com", "Seu PDI", "corpo do e-mail")
	require.NoError(t, err)

	assert.Equal(t, "Seu PDI", sent.Message.Subject)
	assert.Equal(t, "Text", sent.Message.Body.ContentType)
	assert.Equal(t, "corpo do e-mail", sent.Message.Body.Content)
	require.Len(t, sent.Message.ToRecipients, 1)
	assert.Equal(t, "ana@example.com", sent.Message.ToRecipients[0].EmailAddress.Address)
}

func TestSend_AcceptsPlain200(t *testing.T) {
	client := newTestClient(t, http.StatusOK, http.StatusOK, nil)
	assert.NoError(t, client.Send(context.Background(), "ana@example.com", "s", "b"))
}

func TestSend_SurfacesSendFailureBody(t *testing.T) {
	client := newTestClient(t, http.StatusOK, http.StatusForbidden, nil)

	err := client.Send(context.Background(), "ana@example.com", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "mailbox unavailable")
}

func TestSend_TokenFailureAbortsBeforeSending(t *testing.T) {
	client := newTestClient(t, http.StatusUnauthorized, http.StatusAccepted, nil)

	err := client.Send(context.Background(), "ana@example.com", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "obtaining mail token")
	assert.Contains(t, err.Error(), "401")
}

func TestEnabled(t *testing.T) {
	assert.False(t, NewClient(Config{}).Enabled())
	assert.False(t, NewClient(Config{ClientID: "a", ClientSecret: "b", TenantID: "c"}).Enabled())
	assert.True(t, NewClient(Config{ClientID: "a", ClientSecret: "b", TenantID: "c", Sender: "d"}).Enabled())
}
