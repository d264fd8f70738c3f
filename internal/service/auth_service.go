package service

import (
	"errors"
	"strings"

	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"
	"adaptive_learning_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	StudentRepo *repository.StudentRepository
	Cfg         *config.Config
}

func NewAuthService(studentRepo *repository.StudentRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		StudentRepo: studentRepo,
		Cfg:         cfg,
	}
}

// LoginResult 登录结果：目标视图加可选的会话令牌
type LoginResult struct {
	Student   *model.Student
	AdminView bool
	Created   bool
	Token     string
}

// Login 按用户名解析身份。用户名不存在则当场建号并视为已认证；
// "admin" 用户名密码匹配时进管理员视图。密码为明文比对，
// 沿用既有存量数据的语义，见 DESIGN.md。
func (s *AuthService) Login(name, password string) (*LoginResult, error) {
	name = strings.TrimSpace(name)
	password = strings.TrimSpace(password)
	if name == "" || password == "" {
		return nil, util.ErrMissingCredentials
	}

	student, err := s.StudentRepo.FindByName(name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		student = &model.Student{Name: name, Password: password}
		if err := s.StudentRepo.Create(student); err != nil {
			return nil, err
		}
		logger.Log.Info("student auto-registered", zap.Uint("id", student.ID), zap.String("name", name))

		result := &LoginResult{Student: student, Created: true}
		s.attachToken(result)
		return result, nil
	}

	if student.Password != password {
		return nil, util.ErrIncorrectPassword
	}

	result := &LoginResult{
		Student:   student,
		AdminView: student.Name == model.AdminName,
	}
	s.attachToken(result)
	return result, nil
}

// attachToken 签发会话令牌。签发失败只降级为无令牌登录。
func (s *AuthService) attachToken(result *LoginResult) {
	token, err := util.GenerateJWT(result.Student, result.AdminView, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		logger.Log.Warn("failed to issue auth token", zap.Error(err))
		return
	}
	result.Token = token
}

// GetStudent 按 id 取学生，未找到映射为 ErrStudentNotFound
func (s *AuthService) GetStudent(id uint) (*model.Student, error) {
	student, err := s.StudentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}
