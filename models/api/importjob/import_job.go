package importjobapimodels

import (
	"time"

	"skill-tracker-backend/models"
	dbmodels "skill-tracker-backend/models/db"
)

type JobView struct {
	ID          string                 `json:"id"`
	Kind        models.ImportKind      `json:"kind"`
	Year        int                    `json:"year"`
	FileName    string                 `json:"file_name"`
	Status      models.ImportJobStatus `json:"status"`
	StatusText  string                 `json:"status_text"`
	Details     string                 `json:"details,omitempty"`
	RowsAdded   int                    `json:"rows_added"`
	FanoutAdded int                    `json:"fanout_added"`
	CreatedAt   time.Time              `json:"created_at"`
}

func JobConvert(rec dbmodels.ImportJob) JobView {
	return JobView{
		ID:          rec.ID,
		Kind:        rec.Kind,
		Year:        rec.Year,
		FileName:    rec.FileName,
		Status:      rec.Status,
		StatusText:  rec.Status.ToHuman(),
		Details:     rec.Details,
		RowsAdded:   rec.RowsAdded,
		FanoutAdded: rec.FanoutAdded,
		CreatedAt:   rec.CreatedAt,
	}
}
