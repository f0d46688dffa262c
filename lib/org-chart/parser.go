package orgchart

import (
	"strconv"
	"strings"
	"time"

	dbmodels "skill-tracker-backend/models/db"
)

// колонки листа оргструктуры
const (
	colEmployeeNo = iota
	colEmployeeName
	colManagerNo
	colManagerName
	colEffectiveDate
)

// excelSerialEpochOffset — число дней между началом отсчёта дат Excel
// (30.12.1899) и эпохой Unix (01.01.1970).
const excelSerialEpochOffset = 25569

var literalDateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"2006/01/02",
	"01/02/2006",
}

// parseEntries превращает строки листа в записи оргструктуры.
// Первая строка считается заголовком. Строки без табельного номера
// или имени пропускаются. Номер руководителя "NA" или пустой помечает
// корень дерева.
func parseEntries(rows [][]string) []dbmodels.OrgEntry {
	entries := make([]dbmodels.OrgEntry, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		employeeNo := strings.TrimSpace(cellAt(row, colEmployeeNo))
		employeeName := strings.TrimSpace(cellAt(row, colEmployeeName))
		if employeeNo == "" || employeeName == "" {
			continue
		}
		entry := dbmodels.OrgEntry{
			EmployeeNo:    employeeNo,
			EmployeeName:  employeeName,
			ManagerNo:     normalizeManagerNo(cellAt(row, colManagerNo)),
			ManagerName:   strings.TrimSpace(cellAt(row, colManagerName)),
			EffectiveDate: parseEffectiveDate(cellAt(row, colEffectiveDate)),
		}
		entries = append(entries, entry)
	}
	return entries
}

// normalizeManagerNo: литерал "NA" и пустая строка означают отсутствие
// руководителя, узел становится корнем.
func normalizeManagerNo(cell string) *string {
	managerNo := strings.TrimSpace(cell)
	if managerNo == "" || strings.EqualFold(managerNo, "NA") {
		return nil
	}
	return &managerNo
}

// parseEffectiveDate принимает либо серийный номер даты Excel,
// либо дату строкой. Нераспознанное значение превращается в nil.
func parseEffectiveDate(cell string) *time.Time {
	value := strings.TrimSpace(cell)
	if value == "" {
		return nil
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial <= excelSerialEpochOffset {
			return nil
		}
		date := time.Unix(int64((serial-excelSerialEpochOffset)*86400), 0).UTC()
		return &date
	}
	for _, layout := range literalDateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return &date
		}
	}
	return nil
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func findRoots(entries []dbmodels.OrgEntry) []dbmodels.OrgEntry {
	roots := []dbmodels.OrgEntry{}
	for _, entry := range entries {
		if entry.IsRoot() {
			roots = append(roots, entry)
		}
	}
	return roots
}
