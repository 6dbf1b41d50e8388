// file: internals/features/stories/service/story_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	storyModel "github.com/farazuga/podcast-stories-sub000/internals/features/stories/model"
)

var ErrStoryNotFound = errors.New("story not found")

// StoryService is the read-only face of the story-idea repository used by the
// rundown engine. Submission, approval and CSV import live elsewhere.
type StoryService struct {
	DB *gorm.DB
}

func NewStoryService(db *gorm.DB) *StoryService {
	return &StoryService{DB: db}
}

func (s *StoryService) GetStory(ctx context.Context, storyID uuid.UUID) (*storyModel.StoryModel, error) {
	var m storyModel.StoryModel
	if err := s.DB.WithContext(ctx).
		First(&m, "story_id = ?", storyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, err
	}
	return &m, nil
}

type StoryFilters struct {
	Keyword string
	Tag     string
}

// ListVisible returns stories the viewer may browse when linking: approved
// ones plus the viewer's own regardless of status. Admins see everything.
func (s *StoryService) ListVisible(ctx context.Context, viewerID uuid.UUID, isAdmin bool, f StoryFilters, offset, limit int) ([]storyModel.StoryModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&storyModel.StoryModel{})

	if !isAdmin {
		q = q.Where("story_approval_status = ? OR story_uploaded_by = ?",
			storyModel.StoryApprovalApproved, viewerID)
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		q = q.Where("lower(story_title) LIKE ? OR lower(story_description) LIKE ?", like, like)
	}
	if tag := strings.TrimSpace(f.Tag); tag != "" {
		// text[] containment; the sqlite test driver never exercises this filter
		q = q.Where("? = ANY(story_tags)", tag)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []storyModel.StoryModel
	if err := q.Order("story_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
