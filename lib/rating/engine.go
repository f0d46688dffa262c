package rating

import (
	"github.com/pkg/errors"
	"skill-tracker-backend/models"
)

const (
	MinScore = 1
	MaxScore = 4
)

var (
	ErrInvalidScore   = errors.New("оценка должна быть в диапазоне от 1 до 4")
	ErrRecordNotFound = errors.New("запись оценки не найдена")
	ErrItemNotFound   = errors.New("объект оценки не найден")
	ErrYearMismatch   = errors.New("год объекта оценки не совпадает с запрошенным")
	ErrRoleNotAllowed = errors.New("роль не может выставлять оценку через этот путь")
)

// Record — обезличенная запись оценки; за ней стоит UserGoal либо
// UserCompetency, схема полей у них одинаковая.
type Record struct {
	ID             string
	UserID         string
	ItemID         string
	Year           int
	EmployeeRating int
	ManagerRating  int
	AdminRating    int
}

// RecordStore — хранилище записей оценок одного вида.
type RecordStore interface {
	GetByID(id string) (rec *Record, err error)
	Create(rec Record) (id string, err error)
	UpdateRating(id string, updMap map[string]interface{}) error
}

// ItemStore отдаёт год объекта оценки (цели или компетенции).
type ItemStore interface {
	GetYear(id string) (year int, found bool, err error)
}

// Engine — единый путь выставления оценок руководителем и
// администратором, общий для целей и компетенций.
type Engine interface {
	ApplyRating(actor models.Actor, recordID, targetUserID, itemID string, year, score int) (Record, error)
}

func NewEngine(items ItemStore, records RecordStore) Engine {
	return engine{
		items:   items,
		records: records,
	}
}

type engine struct {
	items   ItemStore
	records RecordStore
}

// ApplyRating обновляет ровно одно ролевое поле существующей записи,
// либо создаёт новую запись с нулями в остальных полях.
// Поле сотрудника через этот путь не изменяется никогда.
func (e engine) ApplyRating(actor models.Actor, recordID, targetUserID, itemID string, year, score int) (Record, error) {
	if err := ValidateScore(score); err != nil {
		return Record{}, err
	}
	if !actor.IsAdmin() && !actor.IsManager() {
		return Record{}, ErrRoleNotAllowed
	}

	if recordID != "" {
		rec, err := e.records.GetByID(recordID)
		if err != nil {
			return Record{}, err
		}
		if rec == nil {
			return Record{}, ErrRecordNotFound
		}
		// запись должна принадлежать именно тому пользователю,
		// по которому прошла проверка доступа
		if rec.UserID != targetUserID {
			return Record{}, ErrRecordNotFound
		}
		updMap := map[string]interface{}{}
		if actor.IsAdmin() {
			updMap["admin_rating"] = score
			rec.AdminRating = score
		} else {
			updMap["manager_rating"] = score
			rec.ManagerRating = score
		}
		err = e.records.UpdateRating(rec.ID, updMap)
		if err != nil {
			return Record{}, err
		}
		return *rec, nil
	}

	itemYear, found, err := e.items.GetYear(itemID)
	if err != nil {
		return Record{}, err
	}
	if !found {
		return Record{}, ErrItemNotFound
	}
	if itemYear != year {
		return Record{}, ErrYearMismatch
	}

	rec := Record{
		UserID: targetUserID,
		ItemID: itemID,
		Year:   year,
	}
	if actor.IsAdmin() {
		rec.AdminRating = score
	} else {
		rec.ManagerRating = score
	}
	id, err := e.records.Create(rec)
	if err != nil {
		return Record{}, err
	}
	rec.ID = id
	return rec, nil
}

func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return ErrInvalidScore
	}
	return nil
}
