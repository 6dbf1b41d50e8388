// file: internals/features/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel is consumed read-only by the rundown access rules. Class
// management itself (rosters, codes, invites) lives outside this service.
type ClassModel struct {
	ClassID        uuid.UUID `gorm:"type:uuid;primaryKey;column:class_id"            json:"class_id"`
	ClassName      string    `gorm:"type:varchar(255);not null;column:class_name"    json:"class_name"`
	ClassCode      string    `gorm:"type:varchar(10);uniqueIndex;column:class_code"  json:"class_code"`
	ClassTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:class_teacher_id" json:"class_teacher_id"`

	ClassCreatedAt time.Time      `gorm:"autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index"                           json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}
