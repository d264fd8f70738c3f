package controller

import (
	"net/http"

	"adaptive_learning_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatbotController struct {
	ChatbotService *service.ChatbotService
}

func NewChatbotController(chatbotService *service.ChatbotService) *ChatbotController {
	return &ChatbotController{ChatbotService: chatbotService}
}

func (c *ChatbotController) ChatbotPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "chatbot_ui.html", nil)
}

type chatRequest struct {
	Query       string             `json:"query"`
	ChatHistory []service.ChatTurn `json:"chat_history"`
}

// Chat 聊天接口。回复失败一律在服务层降级成固定话术，这里不会返回 500。
func (c *ChatbotController) Chat(ctx *gin.Context) {
	var req chatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: 'query' field missing."})
		return
	}

	response := c.ChatbotService.Respond(ctx.Request.Context(), req.ChatHistory, req.Query)

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "response": response})
}
