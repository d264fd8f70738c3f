package controller

import (
	"net/http"

	"adaptive_learning_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PredictionController struct {
	Predictor service.GapPredictor
}

func NewPredictionController(predictor service.GapPredictor) *PredictionController {
	return &PredictionController{Predictor: predictor}
}

// predictGapRequest 三个特征，缺省按 0 处理
type predictGapRequest struct {
	QuizScore float64 `json:"quiz_score"`
	TimeSpent float64 `json:"time_spent"`
	Attempts  float64 `json:"attempts"`
}

// PredictLearningGap 直接暴露预测器的 JSON 接口，保持历史线格式
func (c *PredictionController) PredictLearningGap(ctx *gin.Context) {
	var req predictGapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: No JSON data provided."})
		return
	}

	label, err := c.Predictor.Predict([]float64{req.QuizScore, req.TimeSpent, req.Attempts})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction failed: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "prediction": service.CountedLabel(label)})
}
