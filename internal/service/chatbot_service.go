package service

import (
	"context"
	"strings"

	"adaptive_learning_backend/pkg/logger"
	"adaptive_learning_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// ChatTurn 一轮历史对话，沿用生成式 API 的线格式
type ChatTurn struct {
	Role  string     `json:"role"` // user 或 model
	Parts []ChatPart `json:"parts"`
}

type ChatPart struct {
	Text string `json:"text"`
}

// Responder 给定历史对话与新提问，产出一条回复
type Responder interface {
	Reply(ctx context.Context, history []ChatTurn, query string) (string, error)
}

const (
	// FallbackReply 无规则命中时的兜底回复
	FallbackReply = "I'm sorry, I don't quite understand that. Can you rephrase?"
	// ConnectionTroubleReply 外部模型调用失败时的固定致歉
	ConnectionTroubleReply = "I'm having trouble connecting to my knowledge base right now. Please try again later."
)

// keywordRule 关键词规则，按声明顺序求值，先命中先返回
type keywordRule struct {
	keywords []string
	response string
}

var chatRules = []keywordRule{
	{
		keywords: []string{"hello", "hi"},
		response: "Hello! How can I help you with your learning today?",
	},
	{
		keywords: []string{"pythagorean theorem"},
		response: "The Pythagorean theorem states that in a right-angled triangle, the square of the hypotenuse (the side opposite the right angle) is equal to the sum of the squares of the other two sides: a² + b² = c².",
	},
	{
		keywords: []string{"history of india"},
		response: "India has a rich history! Are you interested in ancient, medieval, or modern history?",
	},
	{
		keywords: []string{"who are you", "what can you do"},
		response: "I am your adaptive learning assistant. I can help you find learning materials, predict areas where you might struggle, and answer basic questions.",
	},
	{
		keywords: []string{"thank you", "thanks"},
		response: "You're welcome! Happy learning!",
	},
}

// RuleResponder 关键词匹配回复，不依赖任何外部服务
type RuleResponder struct{}

func (RuleResponder) Reply(_ context.Context, _ []ChatTurn, query string) (string, error) {
	q := strings.ToLower(query)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.response, nil
			}
		}
	}
	return FallbackReply, nil
}

// ChatbotService 聊天入口。配置了外部模型就走外部模型，调用失败
// 降级为固定致歉语，从不向调用方抛服务器错误；没配置则走关键词规则。
// 服务本身无状态，历史对话由请求方整段带入。
type ChatbotService struct {
	External Responder
	Rules    RuleResponder
}

func NewChatbotService(external Responder) *ChatbotService {
	return &ChatbotService{External: external}
}

func (s *ChatbotService) Respond(ctx context.Context, history []ChatTurn, query string) string {
	if s.External != nil {
		reply, err := s.External.Reply(ctx, history, query)
		if err != nil {
			logger.Log.Warn("external chat model failed", zap.Error(err))
			monitoring.ChatFallbackCounter.Inc()
			return ConnectionTroubleReply
		}
		return reply
	}

	reply, _ := s.Rules.Reply(ctx, history, query)
	return reply
}
