package stories

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/farazuga/podcast-stories-sub000/internals/features/stories/model"
)

type StorySeed struct {
	StoryTitle          string   `json:"story_title"`
	StoryDescription    string   `json:"story_description"`
	StoryQuestions      []string `json:"story_questions"`
	StoryInterviewees   []string `json:"story_interviewees"`
	StoryTags           []string `json:"story_tags"`
	StoryApprovalStatus string   `json:"story_approval_status"`
	StoryUploadedBy     string   `json:"story_uploaded_by"`
}

func SeedStoriesFromJSON(db *gorm.DB, filePath string) {
	log.Println("[INFO] Reading seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] Failed to read seed file: %v", err)
	}

	var stories []StorySeed
	if err := json.Unmarshal(file, &stories); err != nil {
		log.Fatalf("[ERROR] Failed to decode seed JSON: %v", err)
	}

	for _, s := range stories {
		var existing model.StoryModel
		if err := db.Where("story_title = ?", s.StoryTitle).First(&existing).Error; err == nil {
			log.Printf("[INFO] Story %q already exists, skipping", s.StoryTitle)
			continue
		}

		uploadedBy, err := uuid.Parse(s.StoryUploadedBy)
		if err != nil {
			log.Printf("[ERROR] Bad uploader id for story %q: %v", s.StoryTitle, err)
			continue
		}

		questions, err := json.Marshal(s.StoryQuestions)
		if err != nil {
			log.Printf("[ERROR] Failed to encode questions for %q: %v", s.StoryTitle, err)
			continue
		}

		row := model.StoryModel{
			StoryTitle:          s.StoryTitle,
			StoryDescription:    s.StoryDescription,
			StoryQuestions:      datatypes.JSON(questions),
			StoryInterviewees:   pq.StringArray(s.StoryInterviewees),
			StoryTags:           pq.StringArray(s.StoryTags),
			StoryApprovalStatus: s.StoryApprovalStatus,
			StoryUploadedBy:     uploadedBy,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[ERROR] Failed to insert story %q: %v", s.StoryTitle, err)
		} else {
			log.Printf("[INFO] Inserted story %q", row.StoryTitle)
		}
	}
}
