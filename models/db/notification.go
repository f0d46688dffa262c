package dbmodels

type Notification struct {
	BaseModel
	UserID  string `gorm:"index"`
	Message string `gorm:"type:text"`
	IsRead  bool
}
