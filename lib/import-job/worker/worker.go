package importjobworker

import (
	"context"
	"time"

	importjob "skill-tracker-backend/lib/import-job"
	baseworker "skill-tracker-backend/lib/utils/base-worker"
)

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("ImportJobWorker", 15*time.Second, 30*time.Second),
		jobs:     importjob.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	jobs importjob.Provider
}

func (i impl) handle(ctx context.Context) {
	i.jobs.ProcessNext(ctx)
}
