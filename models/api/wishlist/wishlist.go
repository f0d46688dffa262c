package wishlistapimodels

import (
	"github.com/pkg/errors"
	dbmodels "skill-tracker-backend/models/db"
)

type WishlistData struct {
	SkillName string `json:"skill_name"`
	Comment   string `json:"comment,omitempty"`
}

func (r WishlistData) Validate() error {
	if r.SkillName == "" {
		return errors.New("не указано название навыка")
	}
	return nil
}

type WishlistView struct {
	ID        string `json:"id"`
	SkillName string `json:"skill_name"`
	Comment   string `json:"comment,omitempty"`
}

func WishlistConvert(rec dbmodels.SkillWishlist) WishlistView {
	return WishlistView{
		ID:        rec.ID,
		SkillName: rec.SkillName,
		Comment:   rec.Comment,
	}
}
