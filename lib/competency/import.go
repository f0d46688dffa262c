package competency

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	dbmodels "skill-tracker-backend/models/db"
)

// колонки листа компетенций, значения лежат в фиксированных
// позициях 1-4
const (
	colCompetencyType = 1
	colCompetencyName = 2
	colWeightage      = 3
	colDescription    = 4
)

// userCompetencyBatchSize — предел размера одной пачки вставки
// при раздаче компетенций пользователям.
const userCompetencyBatchSize = 50

// parseCompetencyRows превращает строки листа в записи компетенций.
// Первая строка считается заголовком, дубликаты по естественному
// ключу (тип + название) пропускаются.
func parseCompetencyRows(rows [][]string, year int) []dbmodels.Competency {
	seen := map[string]bool{}
	result := make([]dbmodels.Competency, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		name := strings.TrimSpace(cellAt(row, colCompetencyName))
		if name == "" {
			continue
		}
		competencyType := strings.TrimSpace(cellAt(row, colCompetencyType))
		naturalKey := fmt.Sprintf("%s|%s", competencyType, name)
		if seen[naturalKey] {
			continue
		}
		seen[naturalKey] = true
		weightage, _ := strconv.Atoi(strings.TrimSpace(cellAt(row, colWeightage)))
		rec := dbmodels.Competency{
			BaseModel: dbmodels.BaseModel{
				ID: uuid.New().String(),
			},
			CompetencyType: competencyType,
			Name:           name,
			Weightage:      weightage,
			Description:    strings.TrimSpace(cellAt(row, colDescription)),
			Year:           year,
		}
		result = append(result, rec)
	}
	return result
}

// fanOutUserCompetencies строит декартово произведение
// пользователи x компетенции, порезанное на пачки вставки.
func fanOutUserCompetencies(userIDs []string, competencies []dbmodels.Competency, year int) [][]dbmodels.UserCompetency {
	batches := [][]dbmodels.UserCompetency{}
	batch := make([]dbmodels.UserCompetency, 0, userCompetencyBatchSize)
	for _, userID := range userIDs {
		for _, competencyRec := range competencies {
			rec := dbmodels.UserCompetency{
				UserID:       userID,
				CompetencyID: competencyRec.ID,
				Year:         year,
			}
			batch = append(batch, rec)
			if len(batch) == userCompetencyBatchSize {
				batches = append(batches, batch)
				batch = make([]dbmodels.UserCompetency, 0, userCompetencyBatchSize)
			}
		}
	}
	if len(batch) > 0 {
		batches = append(batches, batch)
	}
	return batches
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
