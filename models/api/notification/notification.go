package notificationapimodels

import (
	"time"

	dbmodels "skill-tracker-backend/models/db"
)

type NotificationView struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		Message:   rec.Message,
		IsRead:    rec.IsRead,
		CreatedAt: rec.CreatedAt,
	}
}
