package competency

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	dbmodels "skill-tracker-backend/models/db"
)

func TestParseCompetencyRows(t *testing.T) {
	rows := [][]string{
		{"", "Competency type", "Competency Name", "Weightage", "Description"},
		{"", "Hard", "Go", "30", "Разработка на Go"},
		{"", "Hard", "SQL", "20", "Работа с БД"},
		{"", "Hard", "Go", "50", "Дубликат по ключу"},
		{"", "Soft", "Go", "10", "Другой тип — не дубликат"},
		{"", "Hard", "", "10", "Без названия"},
	}

	recs := parseCompetencyRows(rows, 2026)
	require.Len(t, recs, 3)

	require.Equal(t, "Go", recs[0].Name)
	require.Equal(t, "Hard", recs[0].CompetencyType)
	require.Equal(t, 30, recs[0].Weightage)
	require.Equal(t, 2026, recs[0].Year)
	require.NotEmpty(t, recs[0].ID)

	require.Equal(t, "SQL", recs[1].Name)
	require.Equal(t, "Soft", recs[2].CompetencyType)
}

func TestFanOutUserCompetencies(t *testing.T) {
	userIDs := make([]string, 3)
	for i := range userIDs {
		userIDs[i] = fmt.Sprintf("user-%d", i)
	}
	competencies := make([]dbmodels.Competency, 0, 40)
	for i := 0; i < 40; i++ {
		competencies = append(competencies, dbmodels.Competency{
			BaseModel: dbmodels.BaseModel{ID: fmt.Sprintf("comp-%d", i)},
		})
	}

	// 3 x 40 = 120 строк: две полные пачки по 50 и хвост 20
	batches := fanOutUserCompetencies(userIDs, competencies, 2026)
	require.Len(t, batches, 3)
	require.Len(t, batches[0], 50)
	require.Len(t, batches[1], 50)
	require.Len(t, batches[2], 20)

	total := 0
	seen := map[string]bool{}
	for _, batch := range batches {
		for _, rec := range batch {
			total++
			key := rec.UserID + "|" + rec.CompetencyID
			require.False(t, seen[key], "пара не должна повторяться")
			seen[key] = true
			require.Equal(t, 2026, rec.Year)
		}
	}
	require.Equal(t, 120, total)
}

func TestFanOutUserCompetenciesEmpty(t *testing.T) {
	require.Empty(t, fanOutUserCompetencies(nil, nil, 2026))
	require.Empty(t, fanOutUserCompetencies([]string{"user-1"}, nil, 2026))
}
