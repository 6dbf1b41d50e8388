// file: internals/features/rundowns/service/export.go
package service

import (
	"context"

	"github.com/google/uuid"

	rundownModel "github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/model"
)

// RundownDocument is the structured export handed to the external renderer.
// The engine never renders bytes itself.
type RundownDocument struct {
	Rundown rundownModel.RundownModel `json:"rundown"`

	Segments        []DocumentSegment             `json:"segments"`
	UnassignedLinks []rundownModel.StoryLinkModel `json:"unassigned_story_links"`
	Talent          TalentRoster                  `json:"talent"`

	TotalDurationSeconds  int `json:"total_duration_seconds"`
	TargetDurationSeconds int `json:"target_duration_seconds"`
}

type DocumentSegment struct {
	Segment    rundownModel.SegmentModel     `json:"segment"`
	StoryLinks []rundownModel.StoryLinkModel `json:"story_links"`
}

// DocumentRenderer turns a document into a byte stream (PDF etc.). Implemented
// outside this service; invoked by the export endpoint's consumer.
type DocumentRenderer interface {
	Render(doc *RundownDocument) ([]byte, error)
}

// BuildDocument composes the full export view: segments in rank order with
// their story links, unassigned links, talent by role, duration totals.
func (s *RundownService) BuildDocument(ctx context.Context, rundownID uuid.UUID, actor Actor) (*RundownDocument, error) {
	view, err := s.Get(ctx, rundownID, actor)
	if err != nil {
		return nil, err
	}

	doc := &RundownDocument{
		Rundown:               view.Rundown,
		Segments:              make([]DocumentSegment, 0, len(view.Segments)),
		UnassignedLinks:       []rundownModel.StoryLinkModel{},
		Talent:                view.Talent,
		TargetDurationSeconds: view.Rundown.RundownTargetDurationSeconds,
	}

	bySegment := make(map[uuid.UUID][]rundownModel.StoryLinkModel)
	for _, link := range view.StoryLinks {
		if link.StoryLinkSegmentID == nil {
			doc.UnassignedLinks = append(doc.UnassignedLinks, link)
			continue
		}
		bySegment[*link.StoryLinkSegmentID] = append(bySegment[*link.StoryLinkSegmentID], link)
	}

	for _, seg := range view.Segments {
		links := bySegment[seg.SegmentID]
		if links == nil {
			links = []rundownModel.StoryLinkModel{}
		}
		doc.Segments = append(doc.Segments, DocumentSegment{Segment: seg, StoryLinks: links})
		doc.TotalDurationSeconds += seg.SegmentDurationSeconds
	}
	return doc, nil
}
