package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/zenfocus/internal/logging"
)

func newTestClient(t *testing.T, bearer string, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{
		Endpoint:     srv.URL,
		APIKey:       "key-1",
		Bearer:       bearer,
		SystemPrompt: "You are a helpful AI assistant. Be concise and friendly.",
		MaxTokens:    500,
		Temperature:  0.7,
		Timeout:      time.Second,
	})
	require.NoError(t, err)

	return c
}

func TestCompleteRequestShape(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-1", r.Header.Get("api-key"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req completionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 500, req.MaxTokens)
		assert.InDelta(t, 0.7, req.Temperature, 1e-9)
		assert.Equal(t, []Message{
			{Role: RoleSystem, Content: "You are a helpful AI assistant. Be concise and friendly."},
			{Role: RoleUser, Content: "hi"},
		}, req.Messages)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hello there"}}]}`))
	})

	reply, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "Hello there", reply)
}

func TestCompleteWithoutBearer(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	reply, err := c.Complete(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, EmptyReply, reply)
}

func TestCompleteErrorStatus(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})

	_, err := c.Complete(context.Background(), nil)
	require.ErrorIs(t, err, errStatus)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := NewClient(Options{})
	assert.ErrorIs(t, err, errNoEndpoint)
}

type scripted struct {
	err  error
	seen [][]Message
}

func (s *scripted) Complete(_ context.Context, transcript []Message) (string, error) {
	s.seen = append(s.seen, append([]Message(nil), transcript...))
	if s.err != nil {
		return "", s.err
	}

	return "reply", nil
}

func TestSessionKeepsHistory(t *testing.T) {
	fake := &scripted{}
	s := NewSession(fake, logging.Discard())

	assert.Equal(t, "reply", s.Send(context.Background(), "one"))
	assert.Equal(t, "reply", s.Send(context.Background(), "two"))

	assert.Equal(t, []Message{
		{Role: RoleUser, Content: "one"},
		{Role: RoleAssistant, Content: "reply"},
		{Role: RoleUser, Content: "two"},
	}, fake.seen[1])

	history := s.History()
	require.Len(t, history, 5)
	assert.Equal(t, Message{Role: RoleAssistant, Content: Greeting}, history[0])
}

func TestSessionFailureReply(t *testing.T) {
	s := NewSession(&scripted{err: errors.New("dial tcp: refused")}, logging.Discard())

	assert.Equal(t, FailureReply, s.Send(context.Background(), "hello"))
	assert.Equal(t, FailureReply, s.History()[2].Content)
}
