package wishlist

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"skill-tracker-backend/db"
	wishliststore "skill-tracker-backend/lib/wishlist/store"
	initchecker "skill-tracker-backend/lib/utils/init-checker"
	wishlistapimodels "skill-tracker-backend/models/api/wishlist"
	dbmodels "skill-tracker-backend/models/db"
)

var ErrNotFound = errors.New("запись вишлиста не найдена")

type Provider interface {
	Create(userID string, request wishlistapimodels.WishlistData) (id string, err error)
	List(userID string) (list []wishlistapimodels.WishlistView, err error)
	Delete(userID, id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: wishliststore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store wishliststore.Provider
}

func (i impl) Create(userID string, request wishlistapimodels.WishlistData) (id string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err
	}
	id, err = i.store.Create(dbmodels.SkillWishlist{
		UserID:    userID,
		SkillName: request.SkillName,
		Comment:   request.Comment,
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("user_id", userID).
		WithField("rec_id", id).
		Info("навык добавлен в вишлист")
	return id, nil
}

func (i impl) List(userID string) ([]wishlistapimodels.WishlistView, error) {
	recs, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	list := make([]wishlistapimodels.WishlistView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, wishlistapimodels.WishlistConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(userID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil || rec.UserID != userID {
		return ErrNotFound
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("навык удалён из вишлиста")
	return nil
}
