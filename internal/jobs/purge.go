package jobs

import (
	"context"
	"time"

	"shrinkr/internal/service"
)

// PurgeJob deletes URLs that expired longer than retention ago.
// Resolution never depends on it, expiry is checked on every read.
type PurgeJob struct {
	svc       service.URLService
	retention time.Duration
	timeout   time.Duration
}

var _ Job = (*PurgeJob)(nil)

func NewPurgeJob(svc service.URLService, retention, timeout time.Duration) *PurgeJob {
	return &PurgeJob{
		svc:       svc,
		retention: retention,
		timeout:   timeout,
	}
}

func (j *PurgeJob) Name() string {
	return "purge_expired"
}

func (j *PurgeJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	_, err := j.svc.PurgeExpired(ctx, j.retention)
	return err
}
