package users

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"skill-tracker-backend/db"
	usersstore "skill-tracker-backend/lib/users/store"
	authutils "skill-tracker-backend/lib/utils/auth-utils"
	initchecker "skill-tracker-backend/lib/utils/init-checker"
	apimodels "skill-tracker-backend/models/api"
	userapimodels "skill-tracker-backend/models/api/user"
	dbmodels "skill-tracker-backend/models/db"
)

var ErrUserNotFound = errors.New("пользователь не найден")

type Provider interface {
	Create(request userapimodels.UserData) (id string, err error)
	GetByID(id string) (view userapimodels.UserView, err error)
	List(search string, pagination apimodels.Pagination) (list []userapimodels.UserView, rowCount int64, err error)
	Update(id string, updMap map[string]interface{}) error
	Block(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Create(request userapimodels.UserData) (id string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err
	}
	rec := dbmodels.User{
		Email:      request.Email,
		Password:   authutils.GetMD5Hash(request.Password),
		FirstName:  request.FirstName,
		LastName:   request.LastName,
		EmployeeNo: request.EmployeeNo,
		Role:       request.Role,
		IsActive:   true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("email", request.Email).
		Info("создан пользователь")
	return id, nil
}

func (i impl) GetByID(id string) (userapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, ErrUserNotFound
	}
	return userapimodels.UserConvert(*rec), nil
}

func (i impl) List(search string, pagination apimodels.Pagination) (list []userapimodels.UserView, rowCount int64, err error) {
	page, limit := pagination.GetPage()
	recs, rowCount, err := i.store.List(search, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]userapimodels.UserView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, userapimodels.UserConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrUserNotFound
	}
	if pwd, ok := updMap["password"]; ok {
		pwdString, isString := pwd.(string)
		if !isString || pwdString == "" {
			return errors.New("не указан пароль")
		}
		updMap["password"] = authutils.GetMD5Hash(pwdString)
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлён пользователь")
	return nil
}

func (i impl) Block(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrUserNotFound
	}
	err = i.store.Update(id, map[string]interface{}{"is_active": false})
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("пользователь заблокирован")
	return nil
}
