// file: internals/features/rundowns/model/story_link_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StoryLinkModel attaches a point-in-time snapshot of a story idea to a
// rundown. Title/description/questions/interviewees/tags are denormalized at
// attach time so later edits to the source story never change the rundown.
// Unordered; listed by attach time.
type StoryLinkModel struct {
	StoryLinkID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:story_link_id"                                            json:"story_link_id"`
	StoryLinkRundownID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_story_link_rundown_story;column:story_link_rundown_id" json:"story_link_rundown_id"`
	StoryLinkStoryID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_story_link_rundown_story;column:story_link_story_id" json:"story_link_story_id"`
	StoryLinkSegmentID *uuid.UUID `gorm:"type:uuid;index;column:story_link_segment_id"                                         json:"story_link_segment_id,omitempty"`

	// Snapshot fields
	StoryLinkTitle        string         `gorm:"type:varchar(255);not null;column:story_link_title" json:"story_link_title"`
	StoryLinkDescription  string         `gorm:"type:text;column:story_link_description"            json:"story_link_description"`
	StoryLinkQuestions    datatypes.JSON `gorm:"column:story_link_questions"                        json:"story_link_questions,omitempty"`
	StoryLinkInterviewees pq.StringArray `gorm:"type:text[];column:story_link_interviewees"         json:"story_link_interviewees,omitempty"`
	StoryLinkTags         pq.StringArray `gorm:"type:text[];column:story_link_tags"                 json:"story_link_tags,omitempty"`

	StoryLinkNotes string `gorm:"type:text;column:story_link_notes" json:"story_link_notes"`

	StoryLinkAddedBy   uuid.UUID `gorm:"type:uuid;not null;column:story_link_added_by"                 json:"story_link_added_by"`
	StoryLinkCreatedAt time.Time `gorm:"autoCreateTime;column:story_link_created_at"  json:"story_link_created_at"`
	StoryLinkUpdatedAt time.Time `gorm:"autoUpdateTime;column:story_link_updated_at"  json:"story_link_updated_at"`
}

func (StoryLinkModel) TableName() string { return "rundown_story_links" }

func (m *StoryLinkModel) BeforeCreate(tx *gorm.DB) error {
	if m.StoryLinkID == uuid.Nil {
		m.StoryLinkID = uuid.New()
	}
	return nil
}
