package competencyapimodels

import (
	"github.com/pkg/errors"
	dbmodels "skill-tracker-backend/models/db"
)

type CompetencyData struct {
	CompetencyType string `json:"competency_type"`
	Name           string `json:"name"`
	Weightage      int    `json:"weightage"`
	Description    string `json:"description"`
	Year           int    `json:"year"`
}

func (r CompetencyData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название компетенции")
	}
	if r.Year == 0 {
		return errors.New("не указан год компетенции")
	}
	return nil
}

type CompetencyView struct {
	ID             string `json:"id"`
	CompetencyType string `json:"competency_type"`
	Name           string `json:"name"`
	Weightage      int    `json:"weightage"`
	Description    string `json:"description"`
	Year           int    `json:"year"`
}

func CompetencyConvert(rec dbmodels.Competency) CompetencyView {
	return CompetencyView{
		ID:             rec.ID,
		CompetencyType: rec.CompetencyType,
		Name:           rec.Name,
		Weightage:      rec.Weightage,
		Description:    rec.Description,
		Year:           rec.Year,
	}
}

type ImportResult struct {
	CompetenciesAdded     int `json:"competencies_added"`
	UserCompetenciesAdded int `json:"user_competencies_added"`
}
