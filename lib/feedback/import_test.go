package feedback

import (
	"testing"

	"github.com/stretchr/testify/require"
	"skill-tracker-backend/models"
)

func TestParseQuestionRows(t *testing.T) {
	t.Run("нумерация сквозная внутри формы", func(t *testing.T) {
		rows := [][]string{
			{"Form name", "Question", "Type"},
			{"360 Review", "Сильные стороны коллеги?", "Multiple Choice", "Отлично", "Хорошо"},
			{"Self Review", "Чему научились за год?", "Check Boxes"},
			{"360 Review", "Зоны роста коллеги?", "Multiple Choice"},
		}

		recs, err := parseQuestionRows(rows, 2026)
		require.NoError(t, err)
		require.Len(t, recs, 3)

		require.Equal(t, "360 Review", recs[0].FormName)
		require.Equal(t, 1, recs[0].QuestionNumber)
		require.Equal(t, "Self Review", recs[1].FormName)
		require.Equal(t, 1, recs[1].QuestionNumber)
		require.Equal(t, "360 Review", recs[2].FormName)
		require.Equal(t, 2, recs[2].QuestionNumber)

		for _, rec := range recs {
			require.True(t, rec.Original)
			require.Equal(t, 2026, rec.Year)
			require.NotEmpty(t, rec.ID)
		}
		require.Equal(t, models.QuestionTypeMultipleChoice, recs[0].QuestionType)
		require.Equal(t, "Отлично", recs[0].Choice1)
		require.Equal(t, "Хорошо", recs[0].Choice2)
		require.Empty(t, recs[0].Choice3)
	})

	t.Run("строки без формы или текста пропускаются", func(t *testing.T) {
		rows := [][]string{
			{"Form name", "Question", "Type"},
			{"", "Вопрос без формы", "Multiple Choice"},
			{"360 Review", "", "Multiple Choice"},
			{"360 Review", "Нормальный вопрос", "Check Boxes"},
		}

		recs, err := parseQuestionRows(rows, 2026)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		require.Equal(t, "Нормальный вопрос", recs[0].QuestionText)
	})

	t.Run("неизвестный тип вопроса ломает импорт", func(t *testing.T) {
		rows := [][]string{
			{"Form name", "Question", "Type"},
			{"360 Review", "Вопрос", "Free Text"},
		}

		_, err := parseQuestionRows(rows, 2026)
		require.Error(t, err)
		require.Contains(t, err.Error(), "неизвестный тип вопроса")
	})
}
