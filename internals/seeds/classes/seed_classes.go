package classes

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farazuga/podcast-stories-sub000/internals/features/classes/model"
)

type ClassSeed struct {
	ClassName      string `json:"class_name"`
	ClassCode      string `json:"class_code"`
	ClassTeacherID string `json:"class_teacher_id"`
}

func SeedClassesFromJSON(db *gorm.DB, filePath string) {
	log.Println("[INFO] Reading seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] Failed to read seed file: %v", err)
	}

	var classes []ClassSeed
	if err := json.Unmarshal(file, &classes); err != nil {
		log.Fatalf("[ERROR] Failed to decode seed JSON: %v", err)
	}

	for _, c := range classes {
		var existing model.ClassModel
		if err := db.Where("class_code = ?", c.ClassCode).First(&existing).Error; err == nil {
			log.Printf("[INFO] Class %s already exists, skipping", c.ClassCode)
			continue
		}

		teacherID, err := uuid.Parse(c.ClassTeacherID)
		if err != nil {
			log.Printf("[ERROR] Bad teacher id for class %s: %v", c.ClassCode, err)
			continue
		}

		row := model.ClassModel{
			ClassName:      c.ClassName,
			ClassCode:      c.ClassCode,
			ClassTeacherID: teacherID,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[ERROR] Failed to insert class %s: %v", c.ClassCode, err)
		} else {
			log.Printf("[INFO] Inserted class %s (%s)", row.ClassName, row.ClassCode)
		}
	}
}
