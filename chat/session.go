package chat

import (
	"context"
	"log/slog"
)

// Completer turns a transcript into the assistant's next reply.
type Completer interface {
	Complete(ctx context.Context, transcript []Message) (string, error)
}

// Session is one conversation. It is not safe for concurrent use.
type Session struct {
	completer Completer
	log       *slog.Logger
	history   []Message
}

func NewSession(c Completer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}

	return &Session{
		completer: c,
		log:       log,
		history: []Message{
			{Role: RoleAssistant, Content: Greeting},
		},
	}
}

// History returns every turn so far, starting with the greeting.
func (s *Session) History() []Message {
	return append([]Message(nil), s.history...)
}

// Send adds text to the conversation and returns the reply. Failures are
// logged and answered with FailureReply.
func (s *Session) Send(ctx context.Context, text string) string {
	s.history = append(s.history, Message{Role: RoleUser, Content: text})

	// the greeting is local and never sent
	reply, err := s.completer.Complete(ctx, s.history[1:])
	if err != nil {
		s.log.Warn("chat completion failed", slog.Any("error", err))
		reply = FailureReply
	}

	s.history = append(s.history, Message{Role: RoleAssistant, Content: reply})

	return reply
}
