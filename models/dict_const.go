package models

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "Multiple Choice"
	QuestionTypeCheckBoxes     QuestionType = "Check Boxes"
)

func (t QuestionType) IsValid() bool {
	return t == QuestionTypeMultipleChoice || t == QuestionTypeCheckBoxes
}

type FeedbackStatus string

const (
	FeedbackActiveStatus FeedbackStatus = "ACTIVE"
	FeedbackClosedStatus FeedbackStatus = "CLOSED"
)

type ReviewerStatus string

const (
	ReviewerPendingStatus   ReviewerStatus = "PENDING"
	ReviewerCompletedStatus ReviewerStatus = "COMPLETED"
)

type ImportKind string

const (
	ImportKindCompetency       ImportKind = "COMPETENCY"
	ImportKindFeedbackQuestion ImportKind = "FEEDBACK_QUESTION"
)

type ImportJobStatus string

const (
	ImportJobPending    ImportJobStatus = "PENDING"
	ImportJobProcessing ImportJobStatus = "PROCESSING"
	ImportJobDone       ImportJobStatus = "DONE"
	ImportJobFailed     ImportJobStatus = "FAILED"
)

var importJobStatusHumanName = map[ImportJobStatus]string{
	ImportJobPending:    "В очереди",
	ImportJobProcessing: "Обрабатывается",
	ImportJobDone:       "Завершена",
	ImportJobFailed:     "Ошибка",
}

func (s ImportJobStatus) ToHuman() string {
	if human, exist := importJobStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type RoadmapStatus string

const (
	RoadmapPlannedStatus    RoadmapStatus = "PLANNED"
	RoadmapInProgressStatus RoadmapStatus = "IN_PROGRESS"
	RoadmapDoneStatus       RoadmapStatus = "DONE"
)
