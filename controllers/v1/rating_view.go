package apiv1

import (
	"skill-tracker-backend/lib/rating"
	apimodels "skill-tracker-backend/models/api"
)

func ratingRecordView(rec rating.Record) apimodels.RatingRecordView {
	return apimodels.RatingRecordView{
		ID:             rec.ID,
		UserID:         rec.UserID,
		ItemID:         rec.ItemID,
		Year:           rec.Year,
		EmployeeRating: rec.EmployeeRating,
		ManagerRating:  rec.ManagerRating,
		AdminRating:    rec.AdminRating,
	}
}
