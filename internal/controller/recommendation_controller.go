package controller

import (
	"net/http"

	"adaptive_learning_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Recommender *service.RecommenderService
}

func NewRecommendationController(recommender *service.RecommenderService) *RecommendationController {
	return &RecommendationController{Recommender: recommender}
}

type recommendRequest struct {
	StudentID       *uint    `json:"student_id"`
	CompletedTopics []string `json:"completed_topics"`
	CurrentTopic    string   `json:"current_topic"`
}

// RecommendContent 按完成主题和当前主题抽最多三条推荐
func (c *RecommendationController) RecommendContent(ctx *gin.Context) {
	var req recommendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: No JSON data provided."})
		return
	}

	if req.StudentID == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "student_id is required."})
		return
	}

	recommendations, err := c.Recommender.Recommend(ctx.Request.Context(), *req.StudentID, req.CompletedTopics, req.CurrentTopic)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Recommendation failed: " + err.Error()})
		return
	}
	if recommendations == nil {
		recommendations = []string{}
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "recommendations": recommendations})
}
