package orgchart

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"skill-tracker-backend/db"
	orgchartstore "skill-tracker-backend/lib/org-chart/store"
	initchecker "skill-tracker-backend/lib/utils/init-checker"
	orgapimodels "skill-tracker-backend/models/api/org"
	dbmodels "skill-tracker-backend/models/db"
)

var (
	ErrEmptyFile     = errors.New("в файле нет строк с данными оргструктуры")
	ErrNoRoot        = errors.New("в оргструктуре нет корневого руководителя")
	ErrMultipleRoots = errors.New("в оргструктуре больше одного корневого руководителя")
)

type Provider interface {
	ImportFromFile(fileName string, body []byte) (result orgapimodels.UploadResult, err error)
	GetTree() (root *orgapimodels.OrgChartNode, err error)
	List() (list []orgapimodels.OrgEntryView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: orgchartstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

// NewInstance собирает провайдер на переданном хранилище
func NewInstance(store orgchartstore.Provider) Provider {
	return impl{store: store}
}

type impl struct {
	store orgchartstore.Provider
}

func (i impl) ImportFromFile(fileName string, body []byte) (orgapimodels.UploadResult, error) {
	logger := log.WithField("file_name", fileName)
	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return orgapimodels.UploadResult{}, errors.Wrap(err, "не удалось открыть файл оргструктуры")
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return orgapimodels.UploadResult{}, errors.Wrap(err, "не удалось прочитать лист оргструктуры")
	}

	entries := parseEntries(rows)
	if len(entries) == 0 {
		return orgapimodels.UploadResult{}, ErrEmptyFile
	}
	roots := findRoots(entries)
	if len(roots) == 0 {
		return orgapimodels.UploadResult{}, ErrNoRoot
	}
	if len(roots) > 1 {
		return orgapimodels.UploadResult{}, ErrMultipleRoots
	}

	err = i.store.ReplaceAll(entries)
	if err != nil {
		return orgapimodels.UploadResult{}, err
	}
	logger.
		WithField("entries_added", len(entries)).
		WithField("root_name", roots[0].EmployeeName).
		Info("оргструктура загружена")
	return orgapimodels.UploadResult{
		EntriesAdded: len(entries),
		RootName:     roots[0].EmployeeName,
	}, nil
}

func (i impl) GetTree() (*orgapimodels.OrgChartNode, error) {
	recList, err := i.store.ListAll()
	if err != nil {
		return nil, err
	}
	return buildTree(recList), nil
}

func (i impl) List() (list []orgapimodels.OrgEntryView, err error) {
	recList, err := i.store.ListAll()
	if err != nil {
		return nil, err
	}
	list = make([]orgapimodels.OrgEntryView, 0, len(recList))
	for _, rec := range recList {
		view := orgapimodels.OrgEntryView{
			EmployeeNo:    rec.EmployeeNo,
			EmployeeName:  rec.EmployeeName,
			ManagerName:   rec.ManagerName,
			EffectiveDate: rec.EffectiveDate,
		}
		if rec.ManagerNo != nil {
			view.ManagerNo = *rec.ManagerNo
		}
		list = append(list, view)
	}
	return list, nil
}

// buildTree строит дерево от единственного корневого узла,
// nil — когда корня нет.
func buildTree(recList []dbmodels.OrgEntry) *orgapimodels.OrgChartNode {
	for _, rec := range recList {
		if rec.IsRoot() {
			root := orgapimodels.OrgChartNode{
				EmployeeNo:   rec.EmployeeNo,
				EmployeeName: rec.EmployeeName,
				Subordinates: getSubordinates(rec.EmployeeNo, recList),
			}
			return &root
		}
	}
	return nil
}

func getSubordinates(managerNo string, recList []dbmodels.OrgEntry) []orgapimodels.OrgChartNode {
	result := []orgapimodels.OrgChartNode{}
	for _, rec := range recList {
		if rec.ManagerNo == nil || *rec.ManagerNo != managerNo {
			continue
		}
		node := orgapimodels.OrgChartNode{
			EmployeeNo:   rec.EmployeeNo,
			EmployeeName: rec.EmployeeName,
			Subordinates: getSubordinates(rec.EmployeeNo, recList),
		}
		result = append(result, node)
	}
	return result
}
