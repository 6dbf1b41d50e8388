package seeds

import (
	classes "github.com/farazuga/podcast-stories-sub000/internals/seeds/classes"
	stories "github.com/farazuga/podcast-stories-sub000/internals/seeds/stories"

	"gorm.io/gorm"
)

// RunAllSeeds loads the demo dataset. Every seeder skips rows that already
// exist, so running it twice is harmless.
func RunAllSeeds(db *gorm.DB) {
	classes.SeedClassesFromJSON(db, "internals/seeds/classes/data_classes.json")
	stories.SeedStoriesFromJSON(db, "internals/seeds/stories/data_stories.json")
}
