// file: internals/features/rundowns/service/rundowns.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classService "github.com/farazuga/podcast-stories-sub000/internals/features/classes/service"
	rundownModel "github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/model"
)

// RundownService owns the rundown lifecycle and the composed read view.
// "Delete" is always a soft archive so segment/talent/link history survives.
type RundownService struct {
	DB     *gorm.DB
	Roster *classService.RosterService
}

func NewRundownService(db *gorm.DB) *RundownService {
	return &RundownService{
		DB:     db,
		Roster: classService.NewRosterService(db),
	}
}

/* =========================================================
   CREATE (two pinned boundary segments come for free)
   ========================================================= */

type CreateRundownInput struct {
	Title                 string
	AirDate               *time.Time
	TargetDurationSeconds *int
	ShareWithClass        bool
	ClassID               *uuid.UUID
}

func (s *RundownService) Create(ctx context.Context, actor Actor, in CreateRundownInput) (*rundownModel.RundownModel, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidArgument
	}
	if in.ShareWithClass && in.ClassID == nil {
		return nil, ErrShareRequiresClass
	}
	if in.ClassID != nil {
		exists, err := s.Roster.ClassExists(ctx, *in.ClassID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrInvalidArgument
		}
	}
	target := 1200
	if in.TargetDurationSeconds != nil {
		if *in.TargetDurationSeconds <= 0 {
			return nil, ErrInvalidArgument
		}
		target = *in.TargetDurationSeconds
	}

	rundown := rundownModel.RundownModel{
		RundownTitle:                 title,
		RundownAirDate:               in.AirDate,
		RundownTargetDurationSeconds: target,
		RundownShareWithClass:        in.ShareWithClass,
		RundownStatus:                rundownModel.RundownStatusDraft,
		RundownCreatedBy:             actor.ID,
		RundownClassID:               in.ClassID,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rundown).Error; err != nil {
			return err
		}
		boundaries := []rundownModel.SegmentModel{
			{
				SegmentRundownID:       rundown.RundownID,
				SegmentTitle:           "Intro",
				SegmentDurationSeconds: 60,
				SegmentType:            rundownModel.SegmentTypeIntro,
				SegmentPosition:        0,
				SegmentStatus:          rundownModel.SegmentStatusDraft,
				SegmentIsPinned:        true,
			},
			{
				SegmentRundownID:       rundown.RundownID,
				SegmentTitle:           "Outro",
				SegmentDurationSeconds: 60,
				SegmentType:            rundownModel.SegmentTypeOutro,
				SegmentPosition:        1,
				SegmentStatus:          rundownModel.SegmentStatusDraft,
				SegmentIsPinned:        true,
			},
		}
		return tx.Create(&boundaries).Error
	})
	if err != nil {
		return nil, err
	}
	return &rundown, nil
}

/* =========================================================
   GET (composed view)
   ========================================================= */

type RundownView struct {
	Rundown    rundownModel.RundownModel     `json:"rundown"`
	Segments   []rundownModel.SegmentModel   `json:"segments"`
	Talent     TalentRoster                  `json:"talent"`
	StoryLinks []rundownModel.StoryLinkModel `json:"story_links"`
}

func (s *RundownService) Get(ctx context.Context, rundownID uuid.UUID, actor Actor) (*RundownView, error) {
	r, err := fetchRundown(ctx, s.DB, rundownID)
	if err != nil {
		return nil, err
	}
	if err := requireView(ctx, s.DB, r, actor); err != nil {
		return nil, err
	}

	view := &RundownView{Rundown: *r}

	if err := s.DB.WithContext(ctx).
		Where("segment_rundown_id = ?", rundownID).
		Order("segment_position ASC").
		Find(&view.Segments).Error; err != nil {
		return nil, err
	}

	var talent []rundownModel.TalentModel
	if err := s.DB.WithContext(ctx).
		Where("talent_rundown_id = ?", rundownID).
		Order("talent_role ASC, talent_position ASC").
		Find(&talent).Error; err != nil {
		return nil, err
	}
	view.Talent = TalentRoster{Hosts: []rundownModel.TalentModel{}, Guests: []rundownModel.TalentModel{}}
	for _, t := range talent {
		if t.TalentRole == rundownModel.TalentRoleHost {
			view.Talent.Hosts = append(view.Talent.Hosts, t)
		} else {
			view.Talent.Guests = append(view.Talent.Guests, t)
		}
	}

	if err := s.DB.WithContext(ctx).
		Where("story_link_rundown_id = ?", rundownID).
		Order("story_link_created_at ASC").
		Find(&view.StoryLinks).Error; err != nil {
		return nil, err
	}
	return view, nil
}

/* =========================================================
   LIST (visibility-scoped browse)
   ========================================================= */

type ListRundownsFilters struct {
	Status          string
	IncludeArchived bool
}

func (s *RundownService) List(ctx context.Context, actor Actor, f ListRundownsFilters, offset, limit int) ([]rundownModel.RundownModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&rundownModel.RundownModel{})

	switch {
	case actor.IsAdmin():
		// sees everything
	case actor.IsTeacher():
		classIDs, err := s.Roster.ClassIDsForTeacher(ctx, actor.ID)
		if err != nil {
			return nil, 0, err
		}
		if len(classIDs) > 0 {
			q = q.Where("rundown_created_by = ? OR rundown_class_id IN ?", actor.ID, classIDs)
		} else {
			q = q.Where("rundown_created_by = ?", actor.ID)
		}
	case actor.IsStudent():
		classIDs, err := s.Roster.ClassIDsForStudent(ctx, actor.ID)
		if err != nil {
			return nil, 0, err
		}
		if len(classIDs) > 0 {
			q = q.Where("rundown_created_by = ? OR (rundown_share_with_class AND rundown_class_id IN ?)", actor.ID, classIDs)
		} else {
			q = q.Where("rundown_created_by = ?", actor.ID)
		}
	default:
		q = q.Where("rundown_created_by = ?", actor.ID)
	}

	if st := strings.TrimSpace(f.Status); st != "" {
		if !validRundownStatus(st) {
			return nil, 0, ErrInvalidArgument
		}
		q = q.Where("rundown_status = ?", st)
	} else if !f.IncludeArchived {
		q = q.Where("rundown_status <> ?", rundownModel.RundownStatusArchived)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []rundownModel.RundownModel
	if err := q.Order("rundown_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* =========================================================
   UPDATE (patch)
   ========================================================= */

type UpdateRundownInput struct {
	Title                 *string
	AirDate               *time.Time
	TargetDurationSeconds *int
	ShareWithClass        *bool
	ClassID               *uuid.UUID
	DetachClass           bool
	Status                *string
}

func (s *RundownService) Update(ctx context.Context, rundownID uuid.UUID, actor Actor, in UpdateRundownInput) (*rundownModel.RundownModel, error) {
	var updated rundownModel.RundownModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := lockRundown(tx, rundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}

		patch := map[string]interface{}{}
		if in.Title != nil {
			t := strings.TrimSpace(*in.Title)
			if t == "" {
				return ErrInvalidArgument
			}
			patch["rundown_title"] = t
		}
		if in.AirDate != nil {
			patch["rundown_air_date"] = *in.AirDate
		}
		if in.TargetDurationSeconds != nil {
			if *in.TargetDurationSeconds <= 0 {
				return ErrInvalidArgument
			}
			patch["rundown_target_duration_seconds"] = *in.TargetDurationSeconds
		}
		if in.Status != nil {
			st := strings.TrimSpace(*in.Status)
			if !validRundownStatus(st) {
				return ErrInvalidArgument
			}
			patch["rundown_status"] = st
		}

		// resolve the share/class pair against the resulting state
		share := r.RundownShareWithClass
		if in.ShareWithClass != nil {
			share = *in.ShareWithClass
			patch["rundown_share_with_class"] = share
		}
		classID := r.RundownClassID
		switch {
		case in.DetachClass:
			classID = nil
			patch["rundown_class_id"] = nil
		case in.ClassID != nil:
			// roster check rides the transaction's connection
			exists, err := classService.NewRosterService(tx).ClassExists(ctx, *in.ClassID)
			if err != nil {
				return err
			}
			if !exists {
				return ErrInvalidArgument
			}
			classID = in.ClassID
			patch["rundown_class_id"] = *in.ClassID
		}
		if share && classID == nil {
			return ErrShareRequiresClass
		}

		if len(patch) > 0 {
			if err := tx.Model(&rundownModel.RundownModel{}).
				Where("rundown_id = ?", rundownID).
				Updates(patch).Error; err != nil {
				return err
			}
		}
		return tx.First(&updated, "rundown_id = ?", rundownID).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

/* =========================================================
   ARCHIVE (the only "delete")
   ========================================================= */

func (s *RundownService) Archive(ctx context.Context, rundownID uuid.UUID, actor Actor) (*rundownModel.RundownModel, error) {
	st := rundownModel.RundownStatusArchived
	return s.Update(ctx, rundownID, actor, UpdateRundownInput{Status: &st})
}

func validRundownStatus(s string) bool {
	switch s {
	case rundownModel.RundownStatusDraft,
		rundownModel.RundownStatusInProgress,
		rundownModel.RundownStatusArchived:
		return true
	}
	return false
}
