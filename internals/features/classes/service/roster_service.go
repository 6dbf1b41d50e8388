// file: internals/features/classes/service/roster_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "github.com/farazuga/podcast-stories-sub000/internals/features/classes/model"
)

// RosterService answers membership questions for the access rules. It never
// writes; class management is owned by another system.
type RosterService struct {
	DB *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{DB: db}
}

func (s *RosterService) IsTeacherOfClass(ctx context.Context, teacherID, classID uuid.UUID) (bool, error) {
	var cnt int64
	err := s.DB.WithContext(ctx).
		Model(&classModel.ClassModel{}).
		Where("class_id = ? AND class_teacher_id = ?", classID, teacherID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (s *RosterService) IsStudentEnrolled(ctx context.Context, studentID, classID uuid.UUID) (bool, error) {
	var cnt int64
	err := s.DB.WithContext(ctx).
		Model(&classModel.ClassEnrollmentModel{}).
		Where("class_enrollment_class_id = ? AND class_enrollment_user_id = ?", classID, studentID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (s *RosterService) ClassExists(ctx context.Context, classID uuid.UUID) (bool, error) {
	var cnt int64
	err := s.DB.WithContext(ctx).
		Model(&classModel.ClassModel{}).
		Where("class_id = ?", classID).
		Count(&cnt).Error
	return cnt > 0, err
}

// ClassIDsForTeacher lists classes owned by a teacher (rundown list filter).
func (s *RosterService) ClassIDsForTeacher(ctx context.Context, teacherID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&classModel.ClassModel{}).
		Where("class_teacher_id = ?", teacherID).
		Pluck("class_id", &ids).Error
	return ids, err
}

// ClassIDsForStudent lists classes a student is enrolled in.
func (s *RosterService) ClassIDsForStudent(ctx context.Context, studentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&classModel.ClassEnrollmentModel{}).
		Where("class_enrollment_user_id = ?", studentID).
		Pluck("class_enrollment_class_id", &ids).Error
	return ids, err
}
