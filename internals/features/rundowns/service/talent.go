// file: internals/features/rundowns/service/talent.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	rundownModel "github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/model"
)

// TalentService owns the bounded roster of a rundown: at most 4 people total,
// names unique case-insensitively, positions contiguous per role group.
type TalentService struct {
	DB *gorm.DB
}

func NewTalentService(db *gorm.DB) *TalentService {
	return &TalentService{DB: db}
}

// TalentRoster groups the rundown's talent by role, each ordered by position.
type TalentRoster struct {
	Hosts  []rundownModel.TalentModel `json:"hosts"`
	Guests []rundownModel.TalentModel `json:"guests"`
}

/* =========================================================
   LIST
   ========================================================= */

func (s *TalentService) List(ctx context.Context, rundownID uuid.UUID, actor Actor) (*TalentRoster, error) {
	r, err := fetchRundown(ctx, s.DB, rundownID)
	if err != nil {
		return nil, err
	}
	if err := requireView(ctx, s.DB, r, actor); err != nil {
		return nil, err
	}

	var rows []rundownModel.TalentModel
	if err := s.DB.WithContext(ctx).
		Where("talent_rundown_id = ?", rundownID).
		Order("talent_role ASC, talent_position ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	roster := &TalentRoster{
		Hosts:  []rundownModel.TalentModel{},
		Guests: []rundownModel.TalentModel{},
	}
	for _, t := range rows {
		if t.TalentRole == rundownModel.TalentRoleHost {
			roster.Hosts = append(roster.Hosts, t)
		} else {
			roster.Guests = append(roster.Guests, t)
		}
	}
	return roster, nil
}

/* =========================================================
   ADD
   ========================================================= */

func (s *TalentService) Add(ctx context.Context, rundownID uuid.UUID, actor Actor, name, role string) (*rundownModel.TalentModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidArgument
	}
	role = strings.ToLower(strings.TrimSpace(role))
	if !rundownModel.ValidTalentRole(role) {
		return nil, ErrInvalidArgument
	}

	var created rundownModel.TalentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := lockRundown(tx, rundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&rundownModel.TalentModel{}).
			Where("talent_rundown_id = ?", rundownID).
			Count(&total).Error; err != nil {
			return err
		}
		if total >= rundownModel.TalentMaxPerRundown {
			return ErrTalentLimit
		}

		dup, err := talentNameTaken(tx, rundownID, name, uuid.Nil)
		if err != nil {
			return err
		}
		if dup {
			return ErrDuplicateTalent
		}

		var groupCount int64
		if err := tx.Model(&rundownModel.TalentModel{}).
			Where("talent_rundown_id = ? AND talent_role = ?", rundownID, role).
			Count(&groupCount).Error; err != nil {
			return err
		}

		created = rundownModel.TalentModel{
			TalentRundownID: rundownID,
			TalentName:      name,
			TalentRole:      role,
			TalentPosition:  int(groupCount),
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

/* =========================================================
   UPDATE (name / role / position)
   ========================================================= */

type UpdateTalentInput struct {
	Name     *string
	Role     *string
	Position *int
}

func (s *TalentService) Update(ctx context.Context, talentID uuid.UUID, actor Actor, in UpdateTalentInput) (*rundownModel.TalentModel, error) {
	var updated rundownModel.TalentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := fetchTalent(tx, talentID)
		if err != nil {
			return err
		}
		r, err := lockRundown(tx, t.TalentRundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return ErrInvalidArgument
			}
			if !strings.EqualFold(name, t.TalentName) {
				dup, err := talentNameTaken(tx, t.TalentRundownID, name, t.TalentID)
				if err != nil {
					return err
				}
				if dup {
					return ErrDuplicateTalent
				}
			}
			if err := tx.Model(&rundownModel.TalentModel{}).
				Where("talent_id = ?", talentID).
				Update("talent_name", name).Error; err != nil {
				return err
			}
		}

		newRole := t.TalentRole
		if in.Role != nil {
			newRole = strings.ToLower(strings.TrimSpace(*in.Role))
			if !rundownModel.ValidTalentRole(newRole) {
				return ErrInvalidArgument
			}
		}

		switch {
		case newRole != t.TalentRole:
			// leave the old group, land in the new one, then compact both
			if err := tx.Model(&rundownModel.TalentModel{}).
				Where("talent_id = ?", talentID).
				Update("talent_role", newRole).Error; err != nil {
				return err
			}
			if err := compactTalentGroup(tx, t.TalentRundownID, t.TalentRole); err != nil {
				return err
			}
			if err := moveTalentWithinGroup(tx, t.TalentRundownID, newRole, talentID, in.Position); err != nil {
				return err
			}
		case in.Position != nil:
			if err := moveTalentWithinGroup(tx, t.TalentRundownID, newRole, talentID, in.Position); err != nil {
				return err
			}
		}

		return tx.First(&updated, "talent_id = ?", talentID).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

/* =========================================================
   REORDER WITHIN ROLE
   ========================================================= */

func (s *TalentService) ReorderWithinRole(ctx context.Context, rundownID uuid.UUID, actor Actor, role string, orderedIDs []uuid.UUID) (*TalentRoster, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !rundownModel.ValidTalentRole(role) {
		return nil, ErrInvalidArgument
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := lockRundown(tx, rundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}

		currentIDs, err := talentGroupIDs(tx, rundownID, role)
		if err != nil {
			return err
		}
		if err := checkReorderSet(currentIDs, orderedIDs); err != nil {
			return err
		}
		return assignRanks(tx, "rundown_talent", "talent_id", "talent_position", orderedIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.List(ctx, rundownID, actor)
}

/* =========================================================
   DELETE (+ group compaction)
   ========================================================= */

func (s *TalentService) Delete(ctx context.Context, talentID uuid.UUID, actor Actor) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := fetchTalent(tx, talentID)
		if err != nil {
			return err
		}
		r, err := lockRundown(tx, t.TalentRundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}

		if err := tx.Delete(&rundownModel.TalentModel{}, "talent_id = ?", talentID).Error; err != nil {
			return err
		}
		return compactTalentGroup(tx, t.TalentRundownID, t.TalentRole)
	})
}

/* =========================================================
   internals
   ========================================================= */

func fetchTalent(tx *gorm.DB, talentID uuid.UUID) (*rundownModel.TalentModel, error) {
	var t rundownModel.TalentModel
	if err := tx.First(&t, "talent_id = ?", talentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func talentNameTaken(tx *gorm.DB, rundownID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	q := tx.Model(&rundownModel.TalentModel{}).
		Where("talent_rundown_id = ? AND lower(talent_name) = lower(?)", rundownID, name)
	if excludeID != uuid.Nil {
		q = q.Where("talent_id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func talentGroupIDs(tx *gorm.DB, rundownID uuid.UUID, role string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := tx.Model(&rundownModel.TalentModel{}).
		Where("talent_rundown_id = ? AND talent_role = ?", rundownID, role).
		Order("talent_position ASC").
		Pluck("talent_id", &ids).Error
	return ids, err
}

func compactTalentGroup(tx *gorm.DB, rundownID uuid.UUID, role string) error {
	ids, err := talentGroupIDs(tx, rundownID, role)
	if err != nil {
		return err
	}
	return assignRanks(tx, "rundown_talent", "talent_id", "talent_position", ids)
}

// moveTalentWithinGroup compacts the group with the moved member placed at the
// requested position (clamped to the group bounds; nil appends at the end).
func moveTalentWithinGroup(tx *gorm.DB, rundownID uuid.UUID, role string, talentID uuid.UUID, position *int) error {
	ids, err := talentGroupIDs(tx, rundownID, role)
	if err != nil {
		return err
	}
	without := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != talentID {
			without = append(without, id)
		}
	}
	target := len(without)
	if position != nil {
		target = *position
		if target < 0 {
			target = 0
		}
		if target > len(without) {
			target = len(without)
		}
	}
	ordered := make([]uuid.UUID, 0, len(without)+1)
	ordered = append(ordered, without[:target]...)
	ordered = append(ordered, talentID)
	ordered = append(ordered, without[target:]...)
	return assignRanks(tx, "rundown_talent", "talent_id", "talent_position", ordered)
}
