// file: internals/features/rundowns/model/segment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SegmentTypeIntro   = "intro"
	SegmentTypeSegment = "segment"
	SegmentTypeOutro   = "outro"

	SegmentStatusDraft = "Draft"
	SegmentStatusReady = "Ready"
)

// SegmentModel is one ordered content block of a rundown. Positions are kept
// contiguous 0..N-1 per rundown by the ordering service; segments are hard
// deleted (the rundown itself is what gets archived).
type SegmentModel struct {
	SegmentID        uuid.UUID `gorm:"type:uuid;primaryKey;column:segment_id"           json:"segment_id"`
	SegmentRundownID uuid.UUID `gorm:"type:uuid;not null;index;column:segment_rundown_id" json:"segment_rundown_id"`

	SegmentTitle           string `gorm:"type:varchar(255);not null;column:segment_title"                  json:"segment_title"`
	SegmentDurationSeconds int    `gorm:"not null;default:60;column:segment_duration_seconds"              json:"segment_duration_seconds"`
	SegmentType            string `gorm:"type:varchar(20);not null;default:'segment';column:segment_type"  json:"segment_type"`
	SegmentPosition        int    `gorm:"not null;column:segment_position"                                 json:"segment_position"`
	SegmentStatus          string `gorm:"type:varchar(20);not null;default:'Draft';column:segment_status"  json:"segment_status"`

	// Opaque to the engine: intro text, question list, closing text, notes.
	SegmentContent datatypes.JSON `gorm:"column:segment_content" json:"segment_content,omitempty"`

	SegmentIsPinned   bool `gorm:"not null;default:false;column:segment_is_pinned"   json:"segment_is_pinned"`
	SegmentIsExpanded bool `gorm:"not null;default:false;column:segment_is_expanded" json:"segment_is_expanded"`

	SegmentCreatedAt time.Time `gorm:"autoCreateTime;column:segment_created_at" json:"segment_created_at"`
	SegmentUpdatedAt time.Time `gorm:"autoUpdateTime;column:segment_updated_at" json:"segment_updated_at"`
}

func (SegmentModel) TableName() string { return "segments" }

func (m *SegmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.SegmentID == uuid.Nil {
		m.SegmentID = uuid.New()
	}
	return nil
}
