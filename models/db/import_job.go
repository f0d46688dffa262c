package dbmodels

import "skill-tracker-backend/models"

// ImportJob — задача фоновой загрузки из Excel.
// Файл хранится в S3 по ключу S3Key до момента обработки.
type ImportJob struct {
	BaseModel
	Kind        models.ImportKind      `gorm:"type:varchar(50)"`
	Year        int
	FileName    string                 `gorm:"type:varchar(255)"`
	S3Key       string                 `gorm:"type:varchar(255)"`
	Status      models.ImportJobStatus `gorm:"type:varchar(50);index"`
	Details     string                 `gorm:"type:text"` // текст ошибки при статусе FAILED
	RowsAdded   int
	FanoutAdded int
}
