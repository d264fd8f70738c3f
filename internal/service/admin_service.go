package service

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
)

type AdminService struct {
	StudentRepo *repository.StudentRepository
	ContentRepo *repository.ContentRepository
}

func NewAdminService(studentRepo *repository.StudentRepository, contentRepo *repository.ContentRepository) *AdminService {
	return &AdminService{
		StudentRepo: studentRepo,
		ContentRepo: contentRepo,
	}
}

// AdminOverview 管理员视图：全量学生与内容清单
type AdminOverview struct {
	Students []model.Student `json:"students"`
	Content  []model.Content `json:"content"`
}

func (s *AdminService) Overview() (*AdminOverview, error) {
	students, err := s.StudentRepo.FindAll()
	if err != nil {
		return nil, err
	}

	content, err := s.ContentRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return &AdminOverview{Students: students, Content: content}, nil
}
