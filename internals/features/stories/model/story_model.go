// file: internals/features/stories/model/story_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StoryApprovalPending  = "pending"
	StoryApprovalApproved = "approved"
	StoryApprovalRejected = "rejected"
)

// StoryModel is the story-idea repository record. The rundown engine only
// reads it (visibility check + snapshot at attach time); the idea pipeline
// (submission, approval, CSV import) is owned elsewhere.
type StoryModel struct {
	StoryID uuid.UUID `gorm:"type:uuid;primaryKey;column:story_id" json:"story_id"`

	StoryTitle       string         `gorm:"type:varchar(255);not null;column:story_title" json:"story_title"`
	StoryDescription string         `gorm:"type:text;column:story_description"            json:"story_description"`
	StoryQuestions   datatypes.JSON `gorm:"column:story_questions"                        json:"story_questions,omitempty"`

	StoryInterviewees pq.StringArray `gorm:"type:text[];column:story_interviewees" json:"story_interviewees,omitempty"`
	StoryTags         pq.StringArray `gorm:"type:text[];column:story_tags"         json:"story_tags,omitempty"`

	StoryApprovalStatus string    `gorm:"type:varchar(20);not null;default:'pending';column:story_approval_status" json:"story_approval_status"`
	StoryUploadedBy     uuid.UUID `gorm:"type:uuid;not null;index;column:story_uploaded_by"                        json:"story_uploaded_by"`

	StoryCreatedAt time.Time      `gorm:"autoCreateTime;column:story_created_at" json:"story_created_at"`
	StoryUpdatedAt time.Time      `gorm:"autoUpdateTime;column:story_updated_at" json:"story_updated_at"`
	StoryDeletedAt gorm.DeletedAt `gorm:"column:story_deleted_at;index"                           json:"story_deleted_at,omitempty"`
}

func (StoryModel) TableName() string { return "stories" }

func (m *StoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.StoryID == uuid.Nil {
		m.StoryID = uuid.New()
	}
	return nil
}
