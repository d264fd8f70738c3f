package service

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"
)

type InteractionService struct {
	InteractionRepo *repository.InteractionRepository
}

func NewInteractionService(interactionRepo *repository.InteractionRepository) *InteractionService {
	return &InteractionService{InteractionRepo: interactionRepo}
}

// LogInteractionInput 记录一次学习事件。score 与 time_spent_seconds
// 缺省落 NULL，completed 缺省为 false。
type LogInteractionInput struct {
	StudentID        uint     `json:"student_id"`
	ContentID        uint     `json:"content_id"`
	Score            *float64 `json:"score"`
	TimeSpentSeconds *int     `json:"time_spent_seconds"`
	Completed        bool     `json:"completed"`
}

func (s *InteractionService) Log(in LogInteractionInput) (*model.Interaction, error) {
	if in.StudentID == 0 || in.ContentID == 0 {
		return nil, util.ErrMissingInteractionRefs
	}

	interaction := &model.Interaction{
		StudentID:        in.StudentID,
		ContentID:        in.ContentID,
		Score:            in.Score,
		TimeSpentSeconds: in.TimeSpentSeconds,
		Completed:        in.Completed,
	}
	if err := s.InteractionRepo.Create(interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}
