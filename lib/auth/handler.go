package auth

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"skill-tracker-backend/db"
	usersstore "skill-tracker-backend/lib/users/store"
	authutils "skill-tracker-backend/lib/utils/auth-utils"
	initchecker "skill-tracker-backend/lib/utils/init-checker"
	"skill-tracker-backend/models"
	authapimodels "skill-tracker-backend/models/api/auth"
	userapimodels "skill-tracker-backend/models/api/user"
)

var (
	ErrUserNotFound = errors.New("пользователь с такой почтой не найден")
	ErrWrongPwd     = errors.New("пользователь не прошел проверку пароля")
	ErrUserBlocked  = errors.New("пользователь заблокирован")
)

type Provider interface {
	Login(request authapimodels.LoginRequest) (response authapimodels.JWTResponse, err error)
	Refresh(request authapimodels.JWTRefreshRequest) (response authapimodels.JWTResponse, err error)
	Me(userID string) (view userapimodels.UserView, err error)
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

func (i impl) Login(request authapimodels.LoginRequest) (authapimodels.JWTResponse, error) {
	err := request.Validate()
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	logger := log.WithField("email", request.Email)
	user, err := i.store.FindByEmail(request.Email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, ErrUserNotFound
	}
	if authutils.GetMD5Hash(request.Password) != user.Password {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, ErrWrongPwd
	}
	if !user.IsActive {
		logger.Debug("пользователь заблокирован")
		return authapimodels.JWTResponse{}, ErrUserBlocked
	}
	response, err := i.issuePair(user.ID, user.GetFullName(), user.EmployeeNo, user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления даты последнего входа")
	}
	return response, nil
}

func (i impl) Refresh(request authapimodels.JWTRefreshRequest) (authapimodels.JWTResponse, error) {
	err := request.Validate()
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	claims, err := authutils.ParseToken(request.RefreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.New("refresh token не прошел проверку")
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return authapimodels.JWTResponse{}, errors.New("refresh token не содержит идентификатор пользователя")
	}
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, ErrUserNotFound
	}
	if !user.IsActive {
		return authapimodels.JWTResponse{}, ErrUserBlocked
	}
	return i.issuePair(user.ID, user.GetFullName(), user.EmployeeNo, user.Role)
}

func (i impl) Me(userID string) (userapimodels.UserView, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if user == nil {
		return userapimodels.UserView{}, ErrUserNotFound
	}
	return userapimodels.UserConvert(*user), nil
}

func (i impl) issuePair(userID, name, employeeNo string, role models.UserRole) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(userID, name, employeeNo, role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}
