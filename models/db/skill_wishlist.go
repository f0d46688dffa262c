package dbmodels

import "github.com/pkg/errors"

type SkillWishlist struct {
	BaseModel
	UserID    string `gorm:"index"`
	SkillName string `gorm:"type:varchar(255)"`
	Comment   string `gorm:"type:text"`
}

func (r SkillWishlist) Validate() error {
	if r.SkillName == "" {
		return errors.New("не указано название навыка")
	}
	return nil
}
