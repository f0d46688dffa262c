package roadmapapimodels

import (
	"time"

	"github.com/pkg/errors"
	"skill-tracker-backend/models"
	dbmodels "skill-tracker-backend/models/db"
)

type RoadmapData struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      models.RoadmapStatus `json:"status,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
}

func (r RoadmapData) Validate() error {
	if r.Title == "" {
		return errors.New("не указано название этапа развития")
	}
	return nil
}

type RoadmapView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      models.RoadmapStatus `json:"status"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
}

func RoadmapConvert(rec dbmodels.Roadmap) RoadmapView {
	return RoadmapView{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Status:      rec.Status,
		TargetDate:  rec.TargetDate,
	}
}

type RecommendationRequest struct {
	Skills []string `json:"skills"` // текущие навыки, пусто — берём из вишлиста
}

type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}
