package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubResponder 外部模型替身
type stubResponder struct {
	reply string
	err   error
	calls int
}

func (s *stubResponder) Reply(_ context.Context, _ []ChatTurn, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestRuleResponderKeywords(t *testing.T) {
	rules := RuleResponder{}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"greeting", "hello", "Hello! How can I help you with your learning today?"},
		{"greeting uppercase", "HELLO there", "Hello! How can I help you with your learning today?"},
		{"pythagorean theorem", "explain the Pythagorean Theorem please", "The Pythagorean theorem states that in a right-angled triangle, the square of the hypotenuse (the side opposite the right angle) is equal to the sum of the squares of the other two sides: a² + b² = c²."},
		{"history", "tell me about the history of India", "India has a rich history! Are you interested in ancient, medieval, or modern history?"},
		{"identity", "who are you?", "I am your adaptive learning assistant. I can help you find learning materials, predict areas where you might struggle, and answer basic questions."},
		{"thanks", "thanks a lot", "You're welcome! Happy learning!"},
		{"unknown", "what is the airspeed of a swallow", FallbackReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rules.Reply(context.Background(), nil, tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChatbotUsesExternalModelWhenConfigured(t *testing.T) {
	stub := &stubResponder{reply: "external answer"}
	svc := NewChatbotService(stub)

	got := svc.Respond(context.Background(), nil, "hello")

	assert.Equal(t, "external answer", got)
	assert.Equal(t, 1, stub.calls)
}

func TestChatbotApologizesOnExternalFailure(t *testing.T) {
	stub := &stubResponder{err: errors.New("connection refused")}
	svc := NewChatbotService(stub)

	got := svc.Respond(context.Background(), nil, "hello")

	assert.Equal(t, ConnectionTroubleReply, got)
}

func TestChatbotFallsBackToRulesWithoutExternal(t *testing.T) {
	svc := NewChatbotService(nil)

	assert.Equal(t,
		"Hello! How can I help you with your learning today?",
		svc.Respond(context.Background(), nil, "hello"))

	assert.Equal(t, FallbackReply,
		svc.Respond(context.Background(), nil, "zzz unknown zzz"))
}

func TestChatbotPassesHistoryThrough(t *testing.T) {
	history := []ChatTurn{
		{Role: "user", Parts: []ChatPart{{Text: "hi"}}},
		{Role: "model", Parts: []ChatPart{{Text: "hello"}}},
	}

	stub := &stubResponder{reply: "ok"}
	svc := NewChatbotService(stub)

	got := svc.Respond(context.Background(), history, "next question")
	assert.Equal(t, "ok", got)
}
