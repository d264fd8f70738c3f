package repository

import (
	"adaptive_learning_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	err := r.DB.First(&student, id).Error
	return &student, err
}

func (r *StudentRepository) FindByName(name string) (*model.Student, error) {
	var student model.Student
	err := r.DB.Where("name = ?", name).First(&student).Error
	return &student, err
}

func (r *StudentRepository) FindAll() ([]model.Student, error) {
	var students []model.Student
	err := r.DB.Order("id").Find(&students).Error
	return students, err
}
