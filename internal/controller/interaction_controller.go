package controller

import (
	"errors"
	"net/http"

	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"
	"adaptive_learning_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InteractionController struct {
	InteractionService *service.InteractionService
}

func NewInteractionController(interactionService *service.InteractionService) *InteractionController {
	return &InteractionController{InteractionService: interactionService}
}

// LogInteraction 追加一条学习事件
func (c *InteractionController) LogInteraction(ctx *gin.Context) {
	var in service.LogInteractionInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: No JSON data provided."})
		return
	}

	if _, err := c.InteractionService.Log(in); err != nil {
		if errors.Is(err, util.ErrMissingInteractionRefs) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "student_id and content_id are required."})
			return
		}
		logger.Log.Error("interaction insert failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Interaction logged."})
}
