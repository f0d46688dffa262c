package initializers

import (
	"context"

	"skill-tracker-backend/config"
	"skill-tracker-backend/fiberlog"
	"skill-tracker-backend/lib/access"
	"skill-tracker-backend/lib/auth"
	"skill-tracker-backend/lib/competency"
	"skill-tracker-backend/lib/feedback"
	filestorage "skill-tracker-backend/lib/file-storage"
	"skill-tracker-backend/lib/goal"
	importjob "skill-tracker-backend/lib/import-job"
	importjobworker "skill-tracker-backend/lib/import-job/worker"
	"skill-tracker-backend/lib/notification"
	orgchart "skill-tracker-backend/lib/org-chart"
	"skill-tracker-backend/lib/roadmap"
	"skill-tracker-backend/lib/users"
	"skill-tracker-backend/lib/wishlist"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler()
	notification.NewHandler()
	users.NewHandler()
	auth.NewHandler()
	orgchart.NewHandler()
	access.NewHandler()
	goal.NewHandler()
	competency.NewHandler()
	feedback.NewHandler()
	importjob.NewHandler()
	wishlist.NewHandler()
	roadmap.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача обработки очереди импорта из Excel
	importjobworker.StartWorker(ctx)
}
