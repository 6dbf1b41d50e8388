// file: internals/features/rundowns/model/talent_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TalentRoleHost  = "host"
	TalentRoleGuest = "guest"

	// Hard cap across both role groups of one rundown.
	TalentMaxPerRundown = 4
)

// TalentModel is a named participant of a rundown. Position is contiguous
// 0..N-1 per (rundown, role) group; names are unique case-insensitively
// within a rundown.
type TalentModel struct {
	TalentID        uuid.UUID `gorm:"type:uuid;primaryKey;column:talent_id"             json:"talent_id"`
	TalentRundownID uuid.UUID `gorm:"type:uuid;not null;index;column:talent_rundown_id" json:"talent_rundown_id"`

	TalentName     string `gorm:"type:varchar(100);not null;column:talent_name"             json:"talent_name"`
	TalentRole     string `gorm:"type:varchar(10);not null;default:'host';column:talent_role" json:"talent_role"`
	TalentPosition int    `gorm:"not null;column:talent_position"                           json:"talent_position"`

	TalentCreatedAt time.Time `gorm:"autoCreateTime;column:talent_created_at" json:"talent_created_at"`
	TalentUpdatedAt time.Time `gorm:"autoUpdateTime;column:talent_updated_at" json:"talent_updated_at"`
}

func (TalentModel) TableName() string { return "rundown_talent" }

func (m *TalentModel) BeforeCreate(tx *gorm.DB) error {
	if m.TalentID == uuid.Nil {
		m.TalentID = uuid.New()
	}
	return nil
}

func ValidTalentRole(role string) bool {
	return role == TalentRoleHost || role == TalentRoleGuest
}
