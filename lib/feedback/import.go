package feedback

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"skill-tracker-backend/models"
	dbmodels "skill-tracker-backend/models/db"
)

// Колонки листа с вопросами обратной связи
const (
	colQuestionFormName = 0
	colQuestionText     = 1
	colQuestionType     = 2
	colQuestionChoice1  = 3
	colQuestionChoice2  = 4
	colQuestionChoice3  = 5
	colQuestionChoice4  = 6
)

// parseQuestionRows разбирает строки листа в вопросы одного года.
// Первая строка считается заголовком. Номера вопросов назначаются
// сквозными внутри формы в порядке следования строк.
func parseQuestionRows(rows [][]string, year int) ([]dbmodels.FeedbackQuestion, error) {
	recs := make([]dbmodels.FeedbackQuestion, 0, len(rows))
	numberByForm := map[string]int{}
	for idx, row := range rows {
		if idx == 0 {
			continue
		}
		formName := strings.TrimSpace(cellAt(row, colQuestionFormName))
		questionText := strings.TrimSpace(cellAt(row, colQuestionText))
		if formName == "" || questionText == "" {
			continue
		}
		questionType := models.QuestionType(strings.TrimSpace(cellAt(row, colQuestionType)))
		if !questionType.IsValid() {
			return nil, errors.Errorf("строка %d: неизвестный тип вопроса %q", idx+1, questionType)
		}
		numberByForm[formName]++
		recs = append(recs, dbmodels.FeedbackQuestion{
			BaseModel: dbmodels.BaseModel{
				ID: uuid.NewString(),
			},
			FormName:       formName,
			QuestionNumber: numberByForm[formName],
			QuestionText:   questionText,
			QuestionType:   questionType,
			Choice1:        strings.TrimSpace(cellAt(row, colQuestionChoice1)),
			Choice2:        strings.TrimSpace(cellAt(row, colQuestionChoice2)),
			Choice3:        strings.TrimSpace(cellAt(row, colQuestionChoice3)),
			Choice4:        strings.TrimSpace(cellAt(row, colQuestionChoice4)),
			Year:           year,
			Original:       true,
		})
	}
	return recs, nil
}

func readQuestionSheet(file *excelize.File) ([][]string, error) {
	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("в файле нет листов")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения листа")
	}
	return rows, nil
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
