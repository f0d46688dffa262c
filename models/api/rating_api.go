package apimodels

import "github.com/pkg/errors"

// RatingUpdateRequest — общий запрос выставления оценки руководителем
// или администратором, для целей и компетенций.
type RatingUpdateRequest struct {
	RecordID string `json:"record_id,omitempty"` // пусто — создать новую запись
	UserID   string `json:"user_id"`
	ItemID   string `json:"item_id"`
	Year     int    `json:"year"`
	Score    int    `json:"score"`
}

func (r RatingUpdateRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("не указан оцениваемый сотрудник")
	}
	if r.RecordID == "" && r.ItemID == "" {
		return errors.New("не указан объект оценки")
	}
	if r.RecordID == "" && r.Year == 0 {
		return errors.New("не указан год оценки")
	}
	return nil
}

// RatingRecordView — запись оценки в ответе API.
type RatingRecordView struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	ItemID         string `json:"item_id"`
	Year           int    `json:"year"`
	EmployeeRating int    `json:"employee_rating"`
	ManagerRating  int    `json:"manager_rating"`
	AdminRating    int    `json:"admin_rating"`
}
