package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"skill-tracker-backend/models"
)

type Roadmap struct {
	BaseModel
	UserID      string `gorm:"index"`
	Title       string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:text"`
	Status      models.RoadmapStatus `gorm:"type:varchar(50)"`
	TargetDate  *time.Time
}

func (r Roadmap) Validate() error {
	if r.Title == "" {
		return errors.New("не указано название этапа развития")
	}
	return nil
}
