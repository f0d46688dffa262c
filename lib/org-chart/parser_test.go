package orgchart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbmodels "skill-tracker-backend/models/db"
)

func TestNormalizeManagerNo(t *testing.T) {
	require.Nil(t, normalizeManagerNo(""))
	require.Nil(t, normalizeManagerNo("  "))
	require.Nil(t, normalizeManagerNo("NA"))
	require.Nil(t, normalizeManagerNo("na"))
	require.Nil(t, normalizeManagerNo(" Na "))

	managerNo := normalizeManagerNo(" m-100 ")
	require.NotNil(t, managerNo)
	require.Equal(t, "m-100", *managerNo)
}

func TestParseEffectiveDate(t *testing.T) {
	t.Run(`серийный номер Excel`, func(t *testing.T) {
		// 45292 = 01.01.2024
		date := parseEffectiveDate("45292")
		require.NotNil(t, date)
		require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run(`дата строкой`, func(t *testing.T) {
		date := parseEffectiveDate("2024-01-01")
		require.NotNil(t, date)
		require.Equal(t, 2024, date.Year())

		date = parseEffectiveDate("15.07.2025")
		require.NotNil(t, date)
		require.Equal(t, time.July, date.Month())
	})

	t.Run(`мусор и пустые значения`, func(t *testing.T) {
		require.Nil(t, parseEffectiveDate(""))
		require.Nil(t, parseEffectiveDate("когда-нибудь"))
		require.Nil(t, parseEffectiveDate("100")) // раньше эпохи Unix
	})
}

func TestParseEntries(t *testing.T) {
	rows := [][]string{
		{"Employee No", "Employee Name", "Manager No", "Manager Name", "Effective Date"},
		{"m-100", "Alice", "NA", "", "2024-01-01"},
		{"e-200", "Bob", "m-100", "Alice", ""},
		{"", "Без номера", "m-100", "Alice", ""},
		{"e-999", "", "m-100", "Alice", ""},
		{"e-300", "Carol", "e-200", "Bob"},
	}

	entries := parseEntries(rows)
	require.Len(t, entries, 3)

	require.Equal(t, "m-100", entries[0].EmployeeNo)
	require.True(t, entries[0].IsRoot())
	require.NotNil(t, entries[0].EffectiveDate)

	require.Equal(t, "e-200", entries[1].EmployeeNo)
	require.NotNil(t, entries[1].ManagerNo)
	require.Equal(t, "m-100", *entries[1].ManagerNo)

	require.Equal(t, "e-300", entries[2].EmployeeNo)
	require.Nil(t, entries[2].EffectiveDate)
}

func TestFindRoots(t *testing.T) {
	managerNo := "m-100"
	entries := []dbmodels.OrgEntry{
		{EmployeeNo: "m-100", EmployeeName: "Alice"},
		{EmployeeNo: "e-200", EmployeeName: "Bob", ManagerNo: &managerNo},
	}
	roots := findRoots(entries)
	require.Len(t, roots, 1)
	require.Equal(t, "Alice", roots[0].EmployeeName)
}

func TestBuildTree(t *testing.T) {
	t.Run(`дерево с одним корнем`, func(t *testing.T) {
		rootNo := "m-100"
		entries := []dbmodels.OrgEntry{
			{EmployeeNo: "m-100", EmployeeName: "Alice"},
			{EmployeeNo: "e-200", EmployeeName: "Bob", ManagerNo: &rootNo},
			{EmployeeNo: "e-300", EmployeeName: "Carol", ManagerNo: &rootNo},
		}
		root := buildTree(entries)
		require.NotNil(t, root)
		require.Equal(t, "Alice", root.EmployeeName)
		require.Len(t, root.Subordinates, 2)
		require.Equal(t, "Bob", root.Subordinates[0].EmployeeName)
		require.Equal(t, "Carol", root.Subordinates[1].EmployeeName)
	})

	t.Run(`без корня дерева нет`, func(t *testing.T) {
		managerNo := "m-100"
		entries := []dbmodels.OrgEntry{
			{EmployeeNo: "e-200", EmployeeName: "Bob", ManagerNo: &managerNo},
		}
		require.Nil(t, buildTree(entries))
	})
}
