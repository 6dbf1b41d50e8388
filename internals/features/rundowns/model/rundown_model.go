// file: internals/features/rundowns/model/rundown_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lifecycle status of a rundown. Deletion is always a soft archive.
const (
	RundownStatusDraft      = "draft"
	RundownStatusInProgress = "in_progress"
	RundownStatusArchived   = "archived"
)

type RundownModel struct {
	// PK
	RundownID uuid.UUID `gorm:"type:uuid;primaryKey;column:rundown_id" json:"rundown_id"`

	// Attributes
	RundownTitle                 string     `gorm:"type:varchar(255);not null;column:rundown_title"                 json:"rundown_title"`
	RundownAirDate               *time.Time `gorm:"type:date;column:rundown_air_date"                               json:"rundown_air_date,omitempty"`
	RundownTargetDurationSeconds int        `gorm:"not null;default:1200;column:rundown_target_duration_seconds"    json:"rundown_target_duration_seconds"`
	RundownShareWithClass        bool       `gorm:"not null;default:false;column:rundown_share_with_class"          json:"rundown_share_with_class"`
	RundownStatus                string     `gorm:"type:varchar(20);not null;default:'draft';column:rundown_status" json:"rundown_status"`

	// Ownership
	RundownCreatedBy uuid.UUID  `gorm:"type:uuid;not null;index;column:rundown_created_by" json:"rundown_created_by"`
	RundownClassID   *uuid.UUID `gorm:"type:uuid;index;column:rundown_class_id"            json:"rundown_class_id,omitempty"`

	// Audit
	RundownCreatedAt time.Time      `gorm:"autoCreateTime;column:rundown_created_at" json:"rundown_created_at"`
	RundownUpdatedAt time.Time      `gorm:"autoUpdateTime;column:rundown_updated_at" json:"rundown_updated_at"`
	RundownDeletedAt gorm.DeletedAt `gorm:"column:rundown_deleted_at;index"                           json:"rundown_deleted_at,omitempty"`
}

func (RundownModel) TableName() string { return "rundowns" }

func (m *RundownModel) BeforeCreate(tx *gorm.DB) error {
	if m.RundownID == uuid.Nil {
		m.RundownID = uuid.New()
	}
	return nil
}
