package orgapimodels

import "time"

// OrgChartNode — узел дерева оргструктуры для отдачи наружу.
type OrgChartNode struct {
	EmployeeNo   string         `json:"employee_no"`
	EmployeeName string         `json:"employee_name"`
	Subordinates []OrgChartNode `json:"subordinates"`
}

type OrgEntryView struct {
	EmployeeNo    string     `json:"employee_no"`
	EmployeeName  string     `json:"employee_name"`
	ManagerNo     string     `json:"manager_no,omitempty"`
	ManagerName   string     `json:"manager_name,omitempty"`
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
}

type UploadResult struct {
	EntriesAdded int    `json:"entries_added"`
	RootName     string `json:"root_name"`
}

type CheckAccessResponse struct {
	HasAccess bool `json:"hasAccess"`
}
