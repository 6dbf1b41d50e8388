// file: internals/features/classes/model/class_enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassEnrollmentModel struct {
	ClassEnrollmentID      uuid.UUID `gorm:"type:uuid;primaryKey;column:class_enrollment_id"                                                json:"class_enrollment_id"`
	ClassEnrollmentClassID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_class_enrollment;column:class_enrollment_class_id"      json:"class_enrollment_class_id"`
	ClassEnrollmentUserID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_class_enrollment;column:class_enrollment_user_id"       json:"class_enrollment_user_id"`

	ClassEnrollmentJoinedAt time.Time `gorm:"autoCreateTime;column:class_enrollment_joined_at" json:"class_enrollment_joined_at"`
}

func (ClassEnrollmentModel) TableName() string { return "class_enrollments" }

func (m *ClassEnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassEnrollmentID == uuid.Nil {
		m.ClassEnrollmentID = uuid.New()
	}
	return nil
}
