package service

import (
	"context"
	"errors"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"
	"adaptive_learning_backend/pkg/logger"
	"adaptive_learning_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	recentActivityLimit = 5

	LabelStruggling = "Likely to struggle"
	LabelDoingWell  = "Doing well"
)

// CountedLabel 把预测器输出翻译成面板文案，顺带记指标
func CountedLabel(label int) string {
	if label == 1 {
		monitoring.PredictionCounter.WithLabelValues("struggling").Inc()
		return LabelStruggling
	}
	monitoring.PredictionCounter.WithLabelValues("doing_well").Inc()
	return LabelDoingWell
}

type DashboardService struct {
	StudentRepo     *repository.StudentRepository
	ContentRepo     *repository.ContentRepository
	InteractionRepo *repository.InteractionRepository
	Predictor       GapPredictor
	Recommender     *RecommenderService
}

func NewDashboardService(
	studentRepo *repository.StudentRepository,
	contentRepo *repository.ContentRepository,
	interactionRepo *repository.InteractionRepository,
	predictor GapPredictor,
	recommender *RecommenderService,
) *DashboardService {
	return &DashboardService{
		StudentRepo:     studentRepo,
		ContentRepo:     contentRepo,
		InteractionRepo: interactionRepo,
		Predictor:       predictor,
		Recommender:     recommender,
	}
}

// Dashboard 学生面板视图：最近活动、完成主题、随机抽中的当前内容、
// 差距预测标签和推荐标题。
type Dashboard struct {
	Student            *model.Student                 `json:"student"`
	RecentInteractions []repository.RecentInteraction `json:"recent_interactions"`
	CompletedTopics    []string                       `json:"completed_topics"`
	CurrentContent     *repository.ContentSnapshot    `json:"current_content"`
	GapPrediction      string                         `json:"gap_prediction"`
	RecommendedContent []string                       `json:"recommended_content"`
}

func (s *DashboardService) ForStudent(ctx context.Context, studentID uint) (*Dashboard, error) {
	student, err := s.StudentRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	recent, err := s.InteractionRepo.RecentByStudent(studentID, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	completedTopics, err := s.InteractionRepo.CompletedTopics(studentID)
	if err != nil {
		return nil, err
	}

	current, err := s.ContentRepo.RandomForStudent(studentID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Student:            student,
		RecentInteractions: recent,
		CompletedTopics:    completedTopics,
		CurrentContent:     current,
		GapPrediction:      s.predictLabel(current, len(completedTopics)),
		RecommendedContent: s.recommendations(ctx, studentID, completedTopics, current),
	}, nil
}

// predictLabel 组特征喂预测器。预测失败降级为字面错误串，不影响整页。
func (s *DashboardService) predictLabel(current *repository.ContentSnapshot, completedCount int) string {
	features := []float64{0, 0, float64(completedCount)}
	if current != nil {
		if current.Score != nil {
			features[0] = *current.Score
		}
		if current.TimeSpentSeconds != nil {
			features[1] = float64(*current.TimeSpentSeconds)
		}
	}

	label, err := s.Predictor.Predict(features)
	if err != nil {
		monitoring.PredictionCounter.WithLabelValues("error").Inc()
		return "Error predicting: " + err.Error()
	}
	return CountedLabel(label)
}

// recommendations 推荐失败时退回三条随机标题
func (s *DashboardService) recommendations(ctx context.Context, studentID uint, completedTopics []string, current *repository.ContentSnapshot) []string {
	if current == nil {
		return nil
	}

	recs, err := s.Recommender.Recommend(ctx, studentID, completedTopics, current.Topic)
	if err != nil {
		logger.Log.Warn("recommendation failed, serving random titles", zap.Error(err))
		titles, rerr := s.ContentRepo.RandomTitles(maxRecommendations)
		if rerr != nil {
			logger.Log.Error("random title fallback failed", zap.Error(rerr))
			return nil
		}
		return titles
	}
	return recs
}
